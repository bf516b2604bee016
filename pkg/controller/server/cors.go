package server

import "net/http"

const corsAllowHeaders = "authorization, x-client-info, apikey, content-type"

// cors allows browser clients to call the trigger and answers every preflight
// request before routing.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
