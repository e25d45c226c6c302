package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// ExternalSource is the synthetic sender used to seed an account balance
// without debiting a registered account.
const ExternalSource = "external"

// TransferRoutes registers the account-to-account transfer endpoint.
func TransferRoutes(app *fiber.App, deps *Deps) {
	app.Post("/api/transfer", Transfer(deps))
}

// Transfer returns a Fiber handler that moves funds between two registered
// accounts. When from_account is "external" the target is credited without a
// matching debit. The express flag applies the sender's express rules, which
// carry the flat fee.
func Transfer(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransferRequest](c)
		if err != nil {
			return nil // error already written by the helper
		}

		to := deps.Registry.FindByIdentifier(input.ToAccount)
		if to == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", "target account does not exist")
		}

		if input.FromAccount == ExternalSource {
			if res := to.Incoming(input.Amount); !res.Ok() {
				return ErrorResponseJSON(c, fiber.StatusBadRequest, "Transfer failed", res.String())
			}
			return SuccessResponseJSON(c, fiber.StatusOK, transferAccepted, nil)
		}

		from := deps.Registry.FindByIdentifier(input.FromAccount)
		if from == nil {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", "source account does not exist")
		}

		var res account.Result
		if input.Express {
			res = from.Express(input.Amount)
		} else {
			res = from.Outgoing(input.Amount)
		}
		if !res.Ok() {
			log.Warnf("Transfer rejected from %s to %s: %s", input.FromAccount, input.ToAccount, res)
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Transfer failed", res.String())
		}
		to.Incoming(input.Amount)
		return SuccessResponseJSON(c, fiber.StatusOK, transferAccepted, nil)
	}
}
