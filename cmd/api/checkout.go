package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pasal/internal/checkout"
	"pasal/internal/mailer"
	"pasal/internal/payments"
)

type paymentMethod struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon,omitempty"`
}

// The closed set of payment methods the checkout screen offers. "cod" is not
// a gateway: it bypasses dispatch entirely.
var paymentMethods = []paymentMethod{
	{ID: "khalti", Name: "Khalti by IME", Subtitle: "Mobile Wallet - Secure web payment", Icon: "https://khalti.s3.amazonaws.com/image/KHT.png"},
	{ID: "khalti-app", Name: "Khalti App", Subtitle: "Mobile Wallet - Opens instantly", Icon: "https://khalti.s3.amazonaws.com/image/KHT.png"},
	{ID: "esewa", Name: "eSewa Mobile Wallet", Subtitle: "eSewa - Secure web payment", Icon: "https://esewa.com.np/assets/esewa_og.png"},
	{ID: "esewa-app", Name: "eSewa App", Subtitle: "eSewa - Opens instantly", Icon: "https://esewa.com.np/assets/esewa_og.png"},
	{ID: "fonepay", Name: "FonePay", Subtitle: "Pay via your mobile banking app"},
	{ID: "cod", Name: "Cash on Delivery", Subtitle: "Pay when product arrives"},
}

// listPaymentMethodsHandler godoc
//
//	@Summary	List payment methods
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{array}	paymentMethod
//	@Router		/checkout/methods [get]
func (app *application) listPaymentMethodsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, paymentMethods); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateCheckoutSessionPayload struct {
	Product struct {
		Title string  `json:"title" validate:"required,max=200"`
		Price float64 `json:"price" validate:"required,gt=0"`
		Image string  `json:"image" validate:"max=500"`
	} `json:"product" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

// createCheckoutSessionHandler godoc
//
//	@Summary		Create a checkout session
//	@Description	Starts a checkout session for one order; the session tracks the payment state machine
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateCheckoutSessionPayload	true	"Order from the preceding screen"
//	@Success		201		{object}	checkout.Session
//	@Failure		400		{object}	error
//	@Router			/checkout/sessions [post]
func (app *application) createCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateCheckoutSessionPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session := app.sessions.Create(checkout.Order{
		Product: checkout.Product{
			Title: payload.Product.Title,
			Price: payload.Product.Price,
			Image: payload.Product.Image,
		},
		Quantity:    payload.Quantity,
		TotalAmount: payload.TotalAmount,
	})

	if err := app.jsonResponse(w, http.StatusCreated, session); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCheckoutSessionHandler godoc
//
//	@Summary	Get checkout session state
//	@Tags		checkout
//	@Produce	json
//	@Param		sessionID	path		string	true	"Session ID"
//	@Success	200			{object}	checkout.Session
//	@Failure	404			{object}	error
//	@Router		/checkout/sessions/{sessionID} [get]
func (app *application) getCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, session); err != nil {
		app.internalServerError(w, r, err)
	}
}

type DispatchPaymentPayload struct {
	Method string `json:"method" validate:"required,max=30"`
}

type dispatchResponse struct {
	SessionID  string                `json:"session_id"`
	Method     string                `json:"method"`
	Mode       payments.DispatchMode `json:"mode"`
	PaymentURL string                `json:"payment_url"`
	Reference  string                `json:"reference"`
	Fields     map[string]string     `json:"fields,omitempty"`
	FormPath   string                `json:"form_path,omitempty"`
}

// dispatchPaymentHandler godoc
//
//	@Summary		Dispatch a payment attempt
//	@Description	Builds, signs and dispatches the provider request for the selected method. On success the session awaits the external flow.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string					true	"Session ID"
//	@Param			body		body		DispatchPaymentPayload	true	"Selected payment method"
//	@Success		200			{object}	dispatchResponse
//	@Failure		400			{object}	error	"Unknown method or malformed payload"
//	@Failure		404			{object}	error	"Unknown session"
//	@Failure		409			{object}	error	"An attempt is already in flight"
//	@Failure		422			{object}	error	"Provider not configured"
//	@Failure		502			{object}	error	"Provider rejected the request"
//	@Router			/checkout/sessions/{sessionID}/dispatch [post]
func (app *application) dispatchPaymentHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload DispatchPaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.Method == "cod" {
		app.badRequestResponse(w, r, fmt.Errorf("cash on delivery does not dispatch, use the cod endpoint"))
		return
	}

	session, err := app.sessions.Get(sessionID)
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	if err := app.sessions.BeginDispatch(sessionID, payload.Method); err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, checkout.ErrNotIdle):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resp, err := app.payments.InitiatePayment(ctx, payload.Method, payments.PaymentRequest{
		Amount:      session.Order.TotalAmount,
		ProductName: session.Order.Product.Title,
	})
	if err != nil {
		// the attempt is terminal; a fresh click starts a fresh attempt
		if abortErr := app.sessions.AbortDispatch(sessionID); abortErr != nil {
			app.logger.Errorw("failed to abort dispatch", "session", sessionID, "error", abortErr.Error())
		}

		switch {
		case errors.Is(err, payments.ErrMissingConfig):
			app.configurationErrorResponse(w, r, err)
		case errors.Is(err, payments.ErrUnknownGateway):
			app.badRequestResponse(w, r, err)
		default:
			app.badGatewayResponse(w, r, fmt.Errorf("%s initiate: %w", payload.Method, err))
		}
		return
	}

	if err := app.sessions.CompleteDispatch(sessionID, &resp); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	out := dispatchResponse{
		SessionID:  sessionID,
		Method:     payload.Method,
		Mode:       resp.Mode,
		PaymentURL: resp.PaymentURL,
		Reference:  resp.Reference,
		Fields:     resp.Data,
	}
	if resp.Mode == payments.ModeFormPost {
		out.FormPath = fmt.Sprintf("/v1/checkout/sessions/%s/form", sessionID)
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// focusRegainedHandler godoc
//
//	@Summary		Report focus regained
//	@Description	Heuristic exit from the external flow: the client reports its window regained focus. No payment status is confirmed.
//	@Tags			checkout
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	map[string]any
//	@Failure		404			{object}	error
//	@Router			/checkout/sessions/{sessionID}/focus [post]
func (app *application) focusRegainedHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	transitioned, err := app.sessions.RegainFocus(sessionID)
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"state":        checkout.StateIdle,
		"transitioned": transitioned,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cancelCheckoutHandler godoc
//
//	@Summary		Cancel the current attempt
//	@Description	Resets the session to idle. Does not abort an in-flight provider call.
//	@Tags			checkout
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	map[string]any
//	@Failure		404			{object}	error
//	@Router			/checkout/sessions/{sessionID}/cancel [post]
func (app *application) cancelCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := app.sessions.Cancel(sessionID); err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"state":     checkout.StateIdle,
		"cancelled": true,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CashOnDeliveryPayload struct {
	CustomerName  string `json:"customer_name" validate:"omitempty,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,nepaliphone"`
}

// cashOnDeliveryHandler godoc
//
//	@Summary		Place a cash-on-delivery order
//	@Description	Terminal action: issues a confirmation code and navigates back to the origin view. No provider call is made.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string					true	"Session ID"
//	@Param			body		body		CashOnDeliveryPayload	false	"Optional customer contact"
//	@Success		201			{object}	map[string]string
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error	"A payment attempt is in flight"
//	@Router			/checkout/sessions/{sessionID}/cod [post]
func (app *application) cashOnDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload CashOnDeliveryPayload
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if err := Validate.Struct(payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	session, err := app.sessions.Get(sessionID)
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}
	if session.State == checkout.StateDispatching {
		app.conflictResponse(w, r, checkout.ErrNotIdle)
		return
	}

	code, err := app.confirmations.Issue(time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// the session is done either way; the confirmation is the terminal state
	app.sessions.Delete(sessionID)

	if app.mailer != nil && payload.CustomerEmail != "" {
		order := session.Order
		name := payload.CustomerName
		if name == "" {
			name = "Customer"
		}
		email := payload.CustomerEmail
		// best-effort: email failure never fails the order
		go func() {
			data := map[string]any{
				"Username":         name,
				"ConfirmationCode": code,
				"ProductTitle":     order.Product.Title,
				"Quantity":         order.Quantity,
				"TotalAmount":      order.TotalAmount,
				"MerchantName":     app.config.merchant.name,
			}
			if _, err := app.mailer.Send(mailer.OrderConfirmationTemplate, name, email, data); err != nil {
				app.logger.Errorw("failed to send order confirmation email", "session", sessionID, "error", err.Error())
			}
		}()
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{
		"confirmation_code": code,
		"message":           "Order placed successfully with Cash on Delivery!",
		"redirect_to":       "/",
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
