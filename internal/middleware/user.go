package middleware

import (
	"context"
	"fmt"
	"net/http"
)

// Context keys
type contextKey string

const userIDContextKey = contextKey("userID")

// UserResolver extrait l'identifiant utilisateur du paramètre ?user= et
// l'injecte dans le contexte. Le repli sur l'utilisateur par défaut est
// une commodité de la couche API : le coeur exige toujours un
// identifiant explicite.
func UserResolver(defaultUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.URL.Query().Get("user")
			if userID == "" {
				userID = defaultUserID
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext récupère l'identifiant utilisateur depuis le
// contexte de la requête
func GetUserIDFromContext(r *http.Request) (string, error) {
	userID, ok := r.Context().Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}
