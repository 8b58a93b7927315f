package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	mux.Get("/api/products/featured", http.HandlerFunc(app.featuredProducts))
	mux.Get("/api/products/:id", http.HandlerFunc(app.showProduct))
	mux.Get("/api/products", http.HandlerFunc(app.listProducts))
	mux.Get("/api/colors", http.HandlerFunc(app.listColors))
	mux.Get("/api/shipping", http.HandlerFunc(app.shippingQuote))

	mux.Get("/api/cart", http.HandlerFunc(app.showCart))
	mux.Post("/api/cart/items", http.HandlerFunc(app.addCartItem))
	mux.Put("/api/cart/items/:index", http.HandlerFunc(app.updateCartItem))
	mux.Del("/api/cart/items/:index", http.HandlerFunc(app.removeCartItem))
	mux.Post("/api/cart/coupon", http.HandlerFunc(app.applyCoupon))

	mux.Post("/api/auth/register", http.HandlerFunc(app.register))
	mux.Post("/api/auth/login", http.HandlerFunc(app.loginUser))
	mux.Post("/api/auth/google", http.HandlerFunc(app.loginGoogle))
	mux.Post("/api/auth/logout", http.HandlerFunc(app.logoutUser))
	mux.Get("/api/auth/me", http.HandlerFunc(app.currentUser))

	return app.recoverPanic(app.logRequest(secureHeaders(app.session.LoadAndSave(app.identifyBrowser(mux)))))
}
