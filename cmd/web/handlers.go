package main

import (
	"net/http"
	"strconv"

	"decoration_room/internal/catalog"
	"decoration_room/internal/forms"
	"decoration_room/internal/models"
	"decoration_room/internal/pricing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Price filter bounds used when a search leaves them out.
var (
	defaultMinPrice = decimal.Zero
	defaultMaxPrice = decimal.NewFromInt(5000)
)

type productView struct {
	models.Product
	DisplayPrice decimal.Decimal `json:"displayPrice"`
	PriceLabel   string          `json:"priceLabel"`
	OnSale       bool            `json:"onSale"`
}

func viewProducts(ps []models.Product) []productView {
	out := make([]productView, len(ps))
	for i, p := range ps {
		out[i] = productView{
			Product:      p,
			DisplayPrice: p.DisplayPrice(),
			PriceLabel:   pricing.FormatBRL(p.DisplayPrice()),
			OnSale:       p.OnSale(),
		}
	}
	return out
}

func labels(s pricing.Summary) envelope {
	out := envelope{
		"subtotal": pricing.FormatBRL(s.Subtotal),
		"discount": pricing.FormatBRL(s.Discount),
		"total":    pricing.FormatBRL(s.Total),
	}
	if s.Shipping != nil {
		out["shipping"] = pricing.FormatBRL(s.Shipping.Cost)
	}
	return out
}

// --- CATALOG HANDLERS ---

func (app *application) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category, err := models.ParseCategory(q.Get("category"))
	if err != nil {
		app.businessError(w, err)
		return
	}

	if q.Get("q") == "" && q.Get("min") == "" && q.Get("max") == "" {
		app.writeJSON(w, http.StatusOK, envelope{"products": viewProducts(catalog.ByCategory(category))})
		return
	}

	minPrice, maxPrice := defaultMinPrice, defaultMaxPrice
	if v := q.Get("min"); v != "" {
		if minPrice, err = decimal.NewFromString(v); err != nil {
			app.fail(w, http.StatusBadRequest, "Preço mínimo inválido")
			return
		}
	}
	if v := q.Get("max"); v != "" {
		if maxPrice, err = decimal.NewFromString(v); err != nil {
			app.fail(w, http.StatusBadRequest, "Preço máximo inválido")
			return
		}
	}

	found := catalog.Search(q.Get("q"), minPrice, maxPrice, category)
	app.writeJSON(w, http.StatusOK, envelope{"products": viewProducts(found)})
}

func (app *application) featuredProducts(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, envelope{"products": viewProducts(catalog.Featured())})
}

func (app *application) showProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.ByID(r.URL.Query().Get(":id"))
	if !ok {
		app.clientError(w, http.StatusNotFound)
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"product": viewProducts([]models.Product{p})[0]})
}

func (app *application) listColors(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, envelope{"colors": catalog.Colors()})
}

func (app *application) shippingQuote(w http.ResponseWriter, r *http.Request) {
	info, err := pricing.ShippingQuote(r.URL.Query().Get("cep"))
	if err != nil {
		app.businessError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{
		"shipping": info,
		"cep":      forms.FormatCEP(info.CEP),
		"label":    pricing.FormatBRL(info.Cost),
	})
}

// --- CART HANDLERS ---

func (app *application) showCart(w http.ResponseWriter, r *http.Request) {
	m := app.cartManager(r)

	c, err := m.Load(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	summary, err := m.Summary(r.Context(), r.URL.Query().Get("cep"))
	if err != nil {
		app.businessError(w, err)
		return
	}
	used, err := m.CouponUsed(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{
		"cart":       c,
		"summary":    summary,
		"labels":     labels(summary),
		"couponUsed": used,
	})
}

func (app *application) writeCart(w http.ResponseWriter, c models.Cart, message string) {
	summary := pricing.Summarize(c, nil)
	app.writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": message,
		"cart":    c,
		"summary": summary,
		"labels":  labels(summary),
	})
}

func (app *application) addCartItem(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.ByID(r.FormValue("product_id"))
	if !ok {
		app.fail(w, http.StatusNotFound, "Produto não encontrado")
		return
	}

	color := p.Colors[0]
	if name := r.FormValue("color"); name != "" {
		if color, ok = p.Color(name); !ok {
			app.fail(w, http.StatusUnprocessableEntity, "Cor indisponível para este produto")
			return
		}
	}

	c, err := app.cartManager(r).AddItem(r.Context(), p, color)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeCart(w, c, "Produto adicionado ao carrinho")
}

func (app *application) updateCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.URL.Query().Get(":index"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		app.fail(w, http.StatusBadRequest, "Quantidade inválida")
		return
	}

	c, err := app.cartManager(r).UpdateQuantity(r.Context(), index, quantity)
	if err != nil {
		app.businessError(w, err)
		return
	}
	app.writeCart(w, c, "Quantidade atualizada")
}

func (app *application) removeCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.URL.Query().Get(":index"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	c, err := app.cartManager(r).RemoveItem(r.Context(), index)
	if err != nil {
		app.businessError(w, err)
		return
	}
	app.writeCart(w, c, "Produto removido do carrinho")
}

func (app *application) applyCoupon(w http.ResponseWriter, r *http.Request) {
	c, err := app.cartManager(r).ApplyCoupon(r.Context(), r.FormValue("code"))
	if err != nil {
		app.businessError(w, err)
		return
	}
	app.logger.Info("coupon redeemed", zap.String("code", c.CouponCode))
	app.writeCart(w, c, "Cupom aplicado com sucesso!")
}

// --- AUTH HANDLERS ---

func (app *application) writeUser(w http.ResponseWriter, status int, user models.User, message string) {
	app.writeJSON(w, status, envelope{"success": true, "message": message, "user": user})
}

func (app *application) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	// Typed digits are masked before the shape checks.
	r.PostForm.Set("cpf", forms.FormatCPF(r.PostForm.Get("cpf")))
	r.PostForm.Set("phone", forms.FormatPhone(r.PostForm.Get("phone")))

	form := forms.New(r.PostForm)
	form.Required("name", "email", "password", "cpf", "phone")
	form.MatchesPattern("email", forms.EmailRX, "Email inválido")
	form.MatchesPattern("cpf", forms.CPFRX, "CPF inválido. Use o formato: 000.000.000-00")
	form.MatchesPattern("phone", forms.PhoneRX, "Telefone inválido. Use o formato: (00) 00000-0000")
	if !form.Valid() {
		app.writeJSON(w, http.StatusUnprocessableEntity, envelope{
			"success": false,
			"message": form.FirstError("name", "email", "password", "cpf", "phone"),
			"errors":  form.Errors,
		})
		return
	}

	user, err := app.authManager(r).Register(r.Context(),
		form.Get("name"), form.Get("email"), form.Get("password"), form.Get("cpf"), form.Get("phone"))
	if err != nil {
		app.businessError(w, err)
		return
	}

	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.logger.Info("user registered", zap.String("user_id", user.ID))
	app.writeUser(w, http.StatusCreated, user, "Cadastro realizado com sucesso!")
}

func (app *application) loginUser(w http.ResponseWriter, r *http.Request) {
	user, err := app.authManager(r).Login(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		app.businessError(w, err)
		return
	}

	// New token on privilege change.
	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.writeUser(w, http.StatusOK, user, "Login realizado com sucesso!")
}

func (app *application) loginGoogle(w http.ResponseWriter, r *http.Request) {
	user, created, err := app.authManager(r).LoginGoogle(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}

	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	if created {
		app.writeUser(w, http.StatusCreated, user, "Cadastro com Google realizado!")
		return
	}
	app.writeUser(w, http.StatusOK, user, "Login com Google realizado!")
}

func (app *application) logoutUser(w http.ResponseWriter, r *http.Request) {
	if err := app.authManager(r).Logout(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Você saiu da sua conta"})
}

func (app *application) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := app.authManager(r).CurrentUser(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"authenticated": user != nil, "user": user})
}
