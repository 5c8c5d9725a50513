package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"meatmarket/internal/auth"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// ClaimsKey is the echo context key holding the *auth.Claims of a
// verified bearer token.
const ClaimsKey = "user"

func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return claims, nil
}

// currentUser loads the user behind the request's token.
func currentUser(c echo.Context, users service.UserService) (*model.User, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return nil, err
	}
	user, err := users.Get(c.Request().Context(), claims.Username)
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return user, err
}

// requireUser fails unless the token belongs to the user with userID.
func requireUser(c echo.Context, users service.UserService, userID uint) (*model.User, error) {
	user, err := currentUser(c, users)
	if err != nil {
		return nil, err
	}
	if user.UserID != userID {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return user, nil
}

// requireSeller fails unless the token belongs to the seller with sellerID.
func requireSeller(c echo.Context, users service.UserService, sellerID uint) error {
	user, err := currentUser(c, users)
	if err != nil {
		return err
	}
	if !user.IsSeller || user.UserID != sellerID {
		return apperr.Unauthorized("Unauthorized")
	}
	return nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid %s: %s", name, c.Param(name))
	}
	return uint(id), nil
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	return c.Validate(req)
}
