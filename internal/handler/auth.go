package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/e-floriest/farm-backend/internal/config"
	"github.com/e-floriest/farm-backend/internal/middleware"
	"github.com/e-floriest/farm-backend/internal/model"
	"github.com/e-floriest/farm-backend/internal/repository"
	"github.com/e-floriest/farm-backend/internal/utils"
)

// AuthHandler bundles dependencies for the registration and login endpoints.
type AuthHandler struct {
	Cfg        config.Config
	Accounts   AccountStore
	Invalidate CacheInvalidator
}

func NewAuthHandler(cfg config.Config, accounts AccountStore, inval CacheInvalidator) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts, Invalidate: inval}
}

// registerFields lists the required registration keys in validation order,
// so the reported missing field is deterministic.
var registerFields = []string{
	"firstname", "lastname", "dob", "age", "address", "phone_number", "username", "password",
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a farmer account. All fields are required and non-empty,
// age must be an integer within [0,120] inclusive. The password is stored
// only as a bcrypt hash; the response carries the generated account id.
func (h *AuthHandler) Register(c echo.Context) error {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil {
		return emptyBodyError().JSON(c)
	}

	for _, f := range registerFields {
		if fieldEmpty(data, f) {
			return validationError("Missing required field: " + f).JSON(c)
		}
	}

	age, err := parseAge(data["age"])
	if err != nil {
		return validationError("Age must be a number").JSON(c)
	}
	if age < 0 || age > 120 {
		return rangeError("Age must be between 0 and 120").JSON(c)
	}

	hash, err := utils.HashPassword(stringField(data, "password"), h.Cfg.BcryptCost)
	if err != nil {
		return storageError("could not hash password").JSON(c)
	}

	account := model.Account{
		Firstname:    stringField(data, "firstname"),
		Lastname:     stringField(data, "lastname"),
		DOB:          stringField(data, "dob"),
		Age:          age,
		Address:      stringField(data, "address"),
		PhoneNumber:  stringField(data, "phone_number"),
		Username:     stringField(data, "username"),
		PasswordHash: hash,
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	id, err := h.Accounts.Create(ctx, account)
	if err != nil {
		return storageError(err.Error()).JSON(c)
	}
	h.bust(c, middleware.CacheGroupUsers)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful",
		"user_id": id,
	})
}

// Login verifies a username/password pair. Unknown usernames and wrong
// passwords produce the identical response. On success the account id is
// returned together with a short-lived access token; no route requires the
// token, it is issued purely for client convenience.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return validationError("Username and password are required").JSON(c)
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	account, err := h.Accounts.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return authError().JSON(c)
		}
		return storageError("query failed").JSON(c)
	}
	if !utils.VerifyPassword(account.PasswordHash, req.Password) {
		return authError().JSON(c)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, account.ID.Hex(), h.Cfg.AccessTTLMin)
	if err != nil {
		return storageError("issue token failed").JSON(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user_id": account.ID.Hex(),
		"token":   access.Token,
	})
}

// ListUsers returns every registered account. Ids are rendered as opaque
// hex strings; the credential hash is never serialized.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	accounts, err := h.Accounts.All(ctx)
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	return c.JSON(http.StatusOK, accounts)
}

func (h *AuthHandler) bust(c echo.Context, group string) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context(), group)
	}
}

// parseAge accepts the integer shapes a JSON body can carry: a number
// (float64 after decoding) or a numeric string.
func parseAge(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	}
	return 0, errors.New("age is not a number")
}
