package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/koberec/eshop/internal"
	"github.com/koberec/eshop/internal/constants"
	inErrors "github.com/koberec/eshop/internal/errors"
	inHttp "github.com/koberec/eshop/internal/http"
)

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).
			With().
			Str(constants.KEY_TAG, "middleware Auth").
			Logger()
		c := logger.WithContext(r.Context())

		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			logger.Error().Err(inErrors.ErrEmptyAuth).Msg(inErrors.ErrEmptyAuth.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    inErrors.ErrEmptyAuth.Error(),
			})
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")
		jwtToken, err := internal.VerifyToken(c, token)
		if err != nil {
			logger.Error().Err(err).Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    inErrors.ErrTokenInvalid.Error(),
			})
			return
		}

		c = internal.AttachJwtToken(c, jwtToken)
		r = r.WithContext(c)

		next.ServeHTTP(w, r)
	})
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).
			With().
			Str(constants.KEY_TAG, "middleware AdminOnly").
			Logger()
		c := logger.WithContext(r.Context())

		if internal.RoleFromJwtToken(c) != constants.ROLE_ADMIN {
			logger.Error().Err(inErrors.ErrForbidden).Msg(inErrors.ErrForbidden.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusForbidden,
				"message":    inErrors.ErrForbidden.Error(),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
