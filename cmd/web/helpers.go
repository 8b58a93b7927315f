package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"decoration_room/internal/auth"
	"decoration_room/internal/cart"
	"decoration_room/internal/models"
	"decoration_room/internal/pricing"
	"decoration_room/internal/storage"

	"go.uber.org/zap"
)

const (
	browserIDKey     = "browserID"
	browserCookie    = "decoration_room_browser"
	browserCookieAge = 400 * 24 * time.Hour
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope) {
	body, err := json.Marshal(data)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func (app *application) fail(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, envelope{"success": false, "message": message})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.logger.Error("server error", zap.Error(err), zap.ByteString("stack", debug.Stack()))
	app.fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (app *application) clientError(w http.ResponseWriter, status int) {
	app.fail(w, status, http.StatusText(status))
}

// businessError answers the failures the storefront reports to the shopper.
// Anything else is a server error.
func (app *application) businessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrCouponUsed):
		app.fail(w, http.StatusConflict, "Cupom já utilizado anteriormente")
	case errors.Is(err, cart.ErrInvalidCoupon):
		app.fail(w, http.StatusUnprocessableEntity, "Cupom inválido")
	case errors.Is(err, cart.ErrIndexOutOfRange):
		app.fail(w, http.StatusNotFound, "Item não encontrado no carrinho")
	case errors.Is(err, cart.ErrInvalidQuantity):
		app.fail(w, http.StatusUnprocessableEntity, "Quantidade deve ser no mínimo 1")
	case errors.Is(err, pricing.ErrInvalidCEP):
		app.fail(w, http.StatusUnprocessableEntity, "CEP inválido. Digite um CEP válido com 8 dígitos.")
	case errors.Is(err, auth.ErrEmailTaken):
		app.fail(w, http.StatusConflict, "Email já cadastrado")
	case errors.Is(err, auth.ErrCPFTaken):
		app.fail(w, http.StatusConflict, "CPF já cadastrado")
	case errors.Is(err, auth.ErrEmailNotFound):
		app.fail(w, http.StatusUnauthorized, "Email não encontrado")
	case errors.Is(err, models.ErrInvalidCategory):
		app.fail(w, http.StatusBadRequest, "Categoria inválida")
	default:
		app.serverError(w, err)
	}
}

// browserStore returns the store namespace of the requesting browser, as
// resolved by identifyBrowser.
func (app *application) browserStore(r *http.Request) storage.Store {
	return storage.Scoped(app.store, app.session.GetString(r.Context(), browserIDKey))
}

func (app *application) cartManager(r *http.Request) *cart.Manager {
	return cart.NewManager(app.browserStore(r))
}

func (app *application) authManager(r *http.Request) *auth.Manager {
	return auth.NewManager(app.browserStore(r))
}
