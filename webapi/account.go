package webapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// transferAccepted is the message the original product replies with when a
// transfer order is accepted for processing.
const transferAccepted = "Zlecenie przyjęto do realizacji"

// AccountRoutes registers all account endpoints.
//
// Routes:
//   - POST   /api/accounts                     : open a personal or company account
//   - GET    /api/accounts                     : list accounts
//   - GET    /api/accounts/count               : count accounts
//   - GET    /api/accounts/:id                 : fetch one account
//   - PATCH  /api/accounts/:id                 : update display names
//   - DELETE /api/accounts/:id                 : remove an account
//   - POST   /api/accounts/:id/transfer        : apply a transfer to one account
//   - POST   /api/accounts/:id/history/email   : mail the transfer history
//   - POST   /api/accounts/save                : persist the registry
//   - POST   /api/accounts/load                : replace the registry from storage
func AccountRoutes(app *fiber.App, deps *Deps) {
	app.Post("/api/accounts", CreateAccount(deps))
	app.Get("/api/accounts", ListAccounts(deps))
	app.Get("/api/accounts/count", CountAccounts(deps))
	app.Post("/api/accounts/save", SaveAccounts(deps))
	app.Post("/api/accounts/load", LoadAccounts(deps))
	app.Get("/api/accounts/:id", GetAccount(deps))
	app.Patch("/api/accounts/:id", UpdateAccount(deps))
	app.Delete("/api/accounts/:id", DeleteAccount(deps))
	app.Post("/api/accounts/:id/transfer", AccountTransfer(deps))
	app.Post("/api/accounts/:id/history/email", EmailHistory(deps))
}

// CreateAccount returns a Fiber handler that opens a new account. A request
// carrying a nip opens a company account gated by the white-list check;
// anything else opens a personal account.
func CreateAccount(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if err != nil {
			return nil // error already written by the helper
		}
		log.Infof("Create account request: identifier=%s", firstNonEmpty(input.Nip, input.Pesel))

		var acct account.Account
		if input.Nip != "" {
			company, err := account.NewCompany(c.Context(), input.Name, input.Nip, deps.Whitelist)
			if err != nil {
				log.Errorf("Company registration rejected: %v", err)
				return ErrorResponseJSON(c, ErrorToStatusCode(err), "Company not registered", err.Error())
			}
			acct = company
		} else {
			acct = account.NewPersonal(input.Name, input.Surname, input.Pesel, input.PromoCode, deps.PromoPolicy)
		}

		if acct.Identifier() == account.InvalidIdentifier {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid identifier format", "identifier must be 11 characters for personal accounts and 10 for company accounts")
		}
		if deps.Registry.Exists(acct.Identifier()) {
			return ErrorResponseJSON(c, fiber.StatusConflict, "Duplicate identifier", account.ErrDuplicateIdentifier.Error())
		}

		deps.Registry.Add(acct)
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(acct))
	}
}

// ListAccounts returns a Fiber handler that lists every registered account.
func ListAccounts(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := deps.Registry.All()
		dtos := make([]AccountDTO, 0, len(accounts))
		for _, a := range accounts {
			dtos = append(dtos, ToAccountDTO(a))
		}
		return c.Status(fiber.StatusOK).JSON(dtos)
	}
}

// CountAccounts returns a Fiber handler reporting the registry size.
func CountAccounts(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": deps.Registry.Count()})
	}
}

// GetAccount returns a Fiber handler that fetches one account by identifier.
func GetAccount(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct := deps.Registry.FindByIdentifier(c.Params("id"))
		if acct == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", account.ErrAccountNotFound.Error())
		}
		return c.Status(fiber.StatusOK).JSON(ToAccountDTO(acct))
	}
}

// UpdateAccount returns a Fiber handler that updates the mutable display
// names of a personal account. The identifier itself can never change.
func UpdateAccount(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct := deps.Registry.FindByIdentifier(c.Params("id"))
		if acct == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", account.ErrAccountNotFound.Error())
		}
		input, err := BindAndValidate[UpdateAccountRequest](c)
		if err != nil {
			return nil // error already written by the helper
		}
		personal, ok := acct.(*account.PersonalAccount)
		if !ok {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Account not updatable", "company accounts have no mutable name fields")
		}
		personal.Rename(input.Name, input.Surname)
		return SuccessResponseJSON(c, fiber.StatusOK, "Account updated", ToAccountDTO(acct))
	}
}

// DeleteAccount returns a Fiber handler that removes an account from the
// registry.
func DeleteAccount(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct := deps.Registry.FindByIdentifier(c.Params("id"))
		if acct == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", account.ErrAccountNotFound.Error())
		}
		deps.Registry.Remove(acct)
		return SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// AccountTransfer returns a Fiber handler that applies a single incoming,
// outgoing or express transfer to one account. A transfer the domain refuses
// to apply is reported as 422 without further detail, matching the original
// balance-unchanged contract.
func AccountTransfer(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct := deps.Registry.FindByIdentifier(c.Params("id"))
		if acct == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", account.ErrAccountNotFound.Error())
		}
		input, err := BindAndValidate[AccountTransferRequest](c)
		if err != nil {
			return nil // error already written by the helper
		}

		var res account.Result
		switch input.Type {
		case "incoming":
			res = acct.Incoming(input.Amount)
		case "outgoing":
			res = acct.Outgoing(input.Amount)
		case "express":
			res = acct.Express(input.Amount)
		default:
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transfer type", fmt.Sprintf("unsupported transfer type %q", input.Type))
		}

		if !res.Ok() {
			log.Warnf("Transfer rejected for %s: %s", acct.Identifier(), res)
			return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Transaction failed", res.String())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, transferAccepted, ToAccountDTO(acct))
	}
}

// EmailHistory returns a Fiber handler that mails a personal account's
// transfer history to the given address.
func EmailHistory(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct := deps.Registry.FindByIdentifier(c.Params("id"))
		if acct == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", account.ErrAccountNotFound.Error())
		}
		input, err := BindAndValidate[EmailHistoryRequest](c)
		if err != nil {
			return nil // error already written by the helper
		}
		personal, ok := acct.(*account.PersonalAccount)
		if !ok {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "History email unsupported", "history email is only available for personal accounts")
		}
		if !personal.EmailHistory(deps.Notifier, input.Email) {
			return ErrorResponseJSON(c, fiber.StatusBadGateway, "Email delivery failed", "the notifier reported a delivery failure")
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "History email sent", nil)
	}
}

// SaveAccounts returns a Fiber handler that persists the current registry,
// replacing any prior stored snapshot.
func SaveAccounts(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := deps.Registry.All()
		snapshots := make([]account.Snapshot, 0, len(accounts))
		for _, a := range accounts {
			snapshots = append(snapshots, a.Snapshot())
		}
		if err := deps.Repo.SaveAll(c.Context(), snapshots); err != nil {
			log.Errorf("Failed to save accounts: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Persistence failure", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, fmt.Sprintf("Saved %d accounts", len(snapshots)), nil)
	}
}

// LoadAccounts returns a Fiber handler that replaces the registry contents
// with the persisted snapshot.
func LoadAccounts(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snapshots, err := deps.Repo.LoadAll(c.Context())
		if err != nil {
			log.Errorf("Failed to load accounts: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Persistence failure", err.Error())
		}
		accounts := make([]account.Account, 0, len(snapshots))
		for _, snap := range snapshots {
			a, err := account.FromSnapshot(snap)
			if err != nil {
				log.Errorf("Failed to rebuild account %s: %v", snap.Identifier, err)
				return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Persistence failure", err.Error())
			}
			accounts = append(accounts, a)
		}
		deps.Registry.Replace(accounts)
		return SuccessResponseJSON(c, fiber.StatusOK, fmt.Sprintf("Loaded %d accounts", len(accounts)), nil)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
