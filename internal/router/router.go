// Package router maps HTTP routes to handlers and applies the middleware
// each group needs: the public browse group gets the response cache, the
// mutation endpoints get the rate limiter, and the admin group sits
// behind JWT plus the ADMIN role.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/saint-mantis/truster/internal/handler"
	"github.com/saint-mantis/truster/internal/middleware"
	"github.com/saint-mantis/truster/internal/model"
)

// RegisterRoutes registers routes that carry no middleware at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the authentication endpoints.  Register, login and
// refresh are open; me and logout-all require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout with a refresh token in the body needs no JWT.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout", a.Logout)
}

// RegisterPublic wires the guest browsing endpoints.  All of them are
// read-only GETs, so the whole group shares the response cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/home", p.Home)
	g.GET("/properties", p.ListProperties)
	g.GET("/properties/:slug", p.PropertyDetail)
	g.GET("/search", p.ListProperties)
	g.GET("/property-types", p.ListPropertyTypes)
	g.GET("/locations", p.ListLocations)
	g.GET("/agents", p.ListAgents)
	g.GET("/testimonials", p.ListTestimonials)
}

// RegisterSubmissions wires the open mutation endpoints (inquiry and
// contact forms) behind the rate limiter.
func RegisterSubmissions(e *echo.Echo, h *handler.InquiryHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1", limiter)
	g.POST("/inquiries", h.CreateInquiry)
	g.POST("/contact", h.CreateContact)
}

// RegisterFavorites wires the saved-properties endpoints for
// authenticated users.
func RegisterFavorites(e *echo.Echo, f *handler.FavoriteHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/favorites", middleware.JWTAuth(jwtSecret), limiter)
	g.GET("", f.List)
	g.POST("/:propertyID", f.Add)
	g.DELETE("/:propertyID", f.Remove)
}

// RegisterAdmin wires the management surface.  Every route requires a
// valid access token carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/dashboard", a.Dashboard)

	g.GET("/properties", a.ListProperties)
	g.POST("/properties", a.CreateProperty)
	g.GET("/properties/:id", a.GetProperty)
	g.PUT("/properties/:id", a.UpdateProperty)
	g.DELETE("/properties/:id", a.DeleteProperty)

	g.POST("/properties/:id/images", a.AddImage)
	g.PUT("/properties/:id/images/:imageID/primary", a.SetPrimaryImage)
	g.DELETE("/properties/:id/images/:imageID", a.DeleteImage)

	g.POST("/property-types", a.CreatePropertyType)
	g.PUT("/property-types/:id", a.UpdatePropertyType)
	g.DELETE("/property-types/:id", a.DeletePropertyType)

	g.POST("/locations", a.CreateLocation)
	g.DELETE("/locations/:id", a.DeleteLocation)

	g.GET("/features", a.ListFeatures)
	g.POST("/features", a.CreateFeature)
	g.DELETE("/features/:id", a.DeleteFeature)

	g.POST("/agents", a.CreateAgent)
	g.PUT("/agents/:id", a.UpdateAgent)
	g.DELETE("/agents/:id", a.DeleteAgent)

	g.POST("/testimonials", a.CreateTestimonial)
	g.DELETE("/testimonials/:id", a.DeleteTestimonial)

	g.GET("/inquiries", a.ListInquiries)
	g.PUT("/inquiries/:id/status", a.UpdateInquiryStatus)
	g.GET("/contacts", a.ListContacts)
	g.PUT("/contacts/:id/status", a.UpdateContactStatus)
}
