package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/flux-signup/internal/app"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/internal/utils"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/go-playground/validator/v10"
)

// validateField handles POST /api/signup/validate-field.
//
// The form sends the whole set of values with the field being left, because
// confirmPassword depends on password. Responds 200 with the field's message
// ("" when valid), or 400 for malformed JSON or a field outside the form.
func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FieldValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateField").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info().Err(err).Str("func", "*Handler.validateField").Msg("invalid field validation request")
		http.Error(w, requestErrorMessage(err), http.StatusBadRequest)
		return
	}

	msg, err := h.services.SignupService.ValidateField(r.Context(), req.Field, req.Values)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.FieldValidationResponse{Field: req.Field, Error: msg}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.validateField").Msg("error writing response")
	}
}

// validateForm handles POST /api/signup/validate.
func (h *Handler) validateForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateForm").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result := h.services.SignupService.ValidateAll(r.Context(), req.Values)
	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.validateForm").Msg("error writing response")
	}
}

// passwordStrength handles POST /api/signup/strength.
func (h *Handler) passwordStrength(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StrengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.passwordStrength").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	strength := h.services.SignupService.PasswordStrength(r.Context(), req.Password)
	if _, err := utils.WriteJSON(w, strength, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.passwordStrength").Msg("error writing response")
	}
}

// submit handles POST /api/signup. A valid form is answered with 202 and an
// empty error map; an invalid one with 422 and the per-field messages.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.SignupService.Submit(r.Context(), req.Values)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			if _, err = utils.WriteJSON(w, result, http.StatusUnprocessableEntity); err != nil {
				log.Err(err).Str("func", "*Handler.submit").Msg("error writing response")
			}
			return
		}

		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusAccepted); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("error writing response")
	}
}

// writeServiceError renders a service error using the error→status table.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := http.StatusText(status)
	switch {
	case errors.Is(err, service.ErrUnknownField):
		msg = app.MsgUnknownField
	case status == http.StatusInternalServerError:
		msg = app.MsgInternalServerError
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg("service error")
	http.Error(w, msg, status)
}

// requestErrorMessage picks the body for a request that failed struct
// validation. An unknown field name has its own message so that clients can
// tell it apart from other malformed input.
func requestErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == signupFieldTag {
				return app.MsgUnknownField
			}
		}
	}
	return app.MsgInvalidDataProvided
}
