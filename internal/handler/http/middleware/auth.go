package middleware

import (
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromRequest reconstructs the caller from the verified token
// claims. Only meaningful behind AuthRequired.
func IdentityFromRequest(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	return auth.Identity{
		UserID: userID,
		Name:   name,
		Role:   auth.Role(roleStr),
	}, nil
}
