package middleware

import (
	"net/http"
)

// SecureHeaders adiciona os cabeçalhos de segurança padrão às respostas.
// As páginas servem HTML renderizado no servidor, então bloqueamos sniffing
// de tipo de conteúdo e o uso das páginas dentro de frames.
func SecureHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}
