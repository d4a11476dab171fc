package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP, h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.settings.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.Compress(compressionLevel),
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrMethodNotAllowed)
	})

	router.Get("/health", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		if h.settings.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.settings.RequestTimeout))
		}

		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/users/register", h.register)
			r.Post("/users/login", h.login)
			r.Get("/users/logout", h.logout)
			r.Get("/users/loggedin", h.loggedIn)
			r.Post("/users/forgotpassword", h.forgotPassword)
			r.Put("/users/resetpassword/{"+resetTokenURLParam+"}", h.resetPassword)
		})

		// routes behind the session cookie
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/getuser", h.getUser)
			r.Patch("/users/updateuser", h.updateUser)
			r.Patch("/users/changepassword", h.changePassword)

			r.Post("/products", h.createProduct)
			r.Get("/products", h.listProducts)
			r.Get("/products/{"+productIDURLParam+"}", h.getProduct)
			r.Patch("/products/{"+productIDURLParam+"}", h.updateProduct)
			r.Delete("/products/{"+productIDURLParam+"}", h.deleteProduct)

			r.Post("/contactus", h.contactUs)
		})
	})

	return router
}
