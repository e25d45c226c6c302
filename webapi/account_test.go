package webapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AccountApiTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *AccountApiTestSuite) SetupTest() {
	s.env = newTestEnv()
}

func TestAccountApiTestSuite(t *testing.T) {
	suite.Run(t, new(AccountApiTestSuite))
}

func (s *AccountApiTestSuite) createPersonal(pesel string) *AccountApiTestSuite {
	body := fmt.Sprintf(`{"name":"james","surname":"hetfield","pesel":%q}`, pesel)
	resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", body)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	return s
}

func (s *AccountApiTestSuite) TestCreatePersonalAccount() {
	s.Run("valid pesel", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"james","surname":"hetfield","pesel":"89092909825"}`)
		s.Assert().Equal(fiber.StatusCreated, resp.StatusCode)
		var created map[string]any
		decodeJSON(s.T(), resp, &created)
		s.Assert().Equal("Account created", created["message"])
	})

	s.Run("invalid pesel format", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"james","surname":"hetfield","pesel":"123"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestDuplicateIdentifierConflict() {
	s.createPersonal("12345678901")

	resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"john","surname":"doe","pesel":"12345678901"}`)
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusConflict, resp.StatusCode)
	s.Assert().Equal(1, s.env.registry.Count())
}

func (s *AccountApiTestSuite) TestCreateCompanyAccount() {
	s.Run("active company", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"TechCorp","nip":"8461627563"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusCreated, resp.StatusCode)
	})

	s.Run("inactive company is rejected", func() {
		s.env.checker.active = false
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"FakeCorp","nip":"9999999999"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("white-list failure is rejected", func() {
		s.env.checker.err = errors.New("connection refused")
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"TechCorp","nip":"8461627511"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("wrong length nip", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"TechCorp","nip":"123"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestListAndCount() {
	s.createPersonal("11111111111").createPersonal("22222222222")

	resp := s.env.request(s.T(), fiber.MethodGet, "/api/accounts", "")
	var accounts []map[string]any
	decodeJSON(s.T(), resp, &accounts)
	s.Require().Len(accounts, 2)
	s.Assert().Equal("11111111111", accounts[0]["identifier"])

	resp = s.env.request(s.T(), fiber.MethodGet, "/api/accounts/count", "")
	var count map[string]int
	decodeJSON(s.T(), resp, &count)
	s.Assert().Equal(2, count["count"])
}

func (s *AccountApiTestSuite) TestGetAccount() {
	s.createPersonal("89092909825")

	resp := s.env.request(s.T(), fiber.MethodGet, "/api/accounts/89092909825", "")
	var dto map[string]any
	decodeJSON(s.T(), resp, &dto)
	s.Assert().Equal("james", dto["name"])
	s.Assert().Equal("hetfield", dto["surname"])
	s.Assert().Equal(0.0, dto["balance"])

	notFound := s.env.request(s.T(), fiber.MethodGet, "/api/accounts/99999999999", "")
	defer notFound.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusNotFound, notFound.StatusCode)
}

func (s *AccountApiTestSuite) TestUpdateAccount() {
	s.createPersonal("89092909825")

	s.Run("renames a personal account", func() {
		resp := s.env.request(s.T(), fiber.MethodPatch, "/api/accounts/89092909825", `{"name":"lars","surname":"ulrich"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)

		get := s.env.request(s.T(), fiber.MethodGet, "/api/accounts/89092909825", "")
		var dto map[string]any
		decodeJSON(s.T(), get, &dto)
		s.Assert().Equal("lars", dto["name"])
		s.Assert().Equal("ulrich", dto["surname"])
	})

	s.Run("unknown account", func() {
		resp := s.env.request(s.T(), fiber.MethodPatch, "/api/accounts/99999999999", `{"name":"x"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("company accounts are not renamable", func() {
		create := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"TechCorp","nip":"8461627563"}`)
		defer create.Body.Close() //nolint: errcheck
		s.Require().Equal(fiber.StatusCreated, create.StatusCode)

		resp := s.env.request(s.T(), fiber.MethodPatch, "/api/accounts/8461627563", `{"name":"OtherCorp"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestDeleteAccount() {
	s.createPersonal("89092909825")

	resp := s.env.request(s.T(), fiber.MethodDelete, "/api/accounts/89092909825", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
	s.Assert().Equal(0, s.env.registry.Count())

	again := s.env.request(s.T(), fiber.MethodDelete, "/api/accounts/89092909825", "")
	defer again.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusNotFound, again.StatusCode)
}

func (s *AccountApiTestSuite) TestAccountTransfer() {
	s.createPersonal("89092909825")
	const url = "/api/accounts/89092909825/transfer"

	s.Run("incoming credits the balance", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"amount":1000.0,"type":"incoming"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		s.Assert().Equal(1000.0, s.env.balanceOf(s.T(), "89092909825"))
	})

	s.Run("outgoing above balance is unprocessable", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"amount":5000.0,"type":"outgoing"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
		s.Assert().Equal(1000.0, s.env.balanceOf(s.T(), "89092909825"))
	})

	s.Run("non-positive amount is unprocessable", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"amount":-100.0,"type":"outgoing"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	s.Run("express allows overdraft", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"amount":1000.0,"type":"express"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		s.Assert().Equal(-1.0, s.env.balanceOf(s.T(), "89092909825"))
	})

	s.Run("invalid type", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"amount":100.0,"type":"sideways"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("unknown account", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/99999999999/transfer", `{"amount":100.0,"type":"incoming"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestEmailHistory() {
	s.createPersonal("89092909825")
	const url = "/api/accounts/89092909825/history/email"

	s.Run("delivers through the notifier", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"email":"james@example.com"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
		s.Assert().Equal("james@example.com", s.env.notifier.recipient)
	})

	s.Run("notifier failure", func() {
		s.env.notifier.ok = false
		resp := s.env.request(s.T(), fiber.MethodPost, url, `{"email":"james@example.com"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadGateway, resp.StatusCode)
	})

	s.Run("company accounts are unsupported", func() {
		create := s.env.request(s.T(), fiber.MethodPost, "/api/accounts", `{"name":"TechCorp","nip":"8461627563"}`)
		defer create.Body.Close() //nolint: errcheck
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/8461627563/history/email", `{"email":"cfo@techcorp.com"}`)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestSaveAndLoad() {
	s.createPersonal("92031512345").createPersonal("88102298765")

	s.Run("save persists the registry", func() {
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/save", "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var body map[string]any
		decodeJSON(s.T(), resp, &body)
		s.Assert().Equal("Saved 2 accounts", body["message"])
		s.Assert().Len(s.env.repo.stored, 2)
	})

	s.Run("load replaces the registry", func() {
		save := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/save", "")
		defer save.Body.Close() //nolint: errcheck

		del := s.env.request(s.T(), fiber.MethodDelete, "/api/accounts/92031512345", "")
		defer del.Body.Close() //nolint: errcheck
		s.Require().Equal(1, s.env.registry.Count())

		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/load", "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var body map[string]any
		decodeJSON(s.T(), resp, &body)
		s.Assert().Equal("Loaded 2 accounts", body["message"])
		s.Assert().Equal(2, s.env.registry.Count())
		s.Assert().True(s.env.registry.Exists("92031512345"))
	})

	s.Run("persistence failure surfaces as 500", func() {
		s.env.repo.saveErr = errors.New("db down")
		resp := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/save", "")
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func (s *AccountApiTestSuite) TestSeedSpendAndOverdraw() {
	s.createPersonal("12345678901")

	seed := s.env.request(s.T(), fiber.MethodPost, "/api/transfer", `{"from_account":"external","to_account":"12345678901","amount":500.0}`)
	defer seed.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, seed.StatusCode)
	s.Assert().Equal(500.0, s.env.balanceOf(s.T(), "12345678901"))

	spend := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/12345678901/transfer", `{"amount":300.0,"type":"outgoing"}`)
	defer spend.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, spend.StatusCode)
	s.Assert().Equal(200.0, s.env.balanceOf(s.T(), "12345678901"))

	overdraw := s.env.request(s.T(), fiber.MethodPost, "/api/accounts/12345678901/transfer", `{"amount":1000.0,"type":"outgoing"}`)
	defer overdraw.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusUnprocessableEntity, overdraw.StatusCode)
	s.Assert().Equal(200.0, s.env.balanceOf(s.T(), "12345678901"))
}
