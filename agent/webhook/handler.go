// Package webhook exposes the fulfillment dispatcher over HTTP for the
// conversation platform's code hook.
package webhook

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "alexbuddy/agent/contract"
	lexv2x "alexbuddy/agent/lexv2"
)

// TurnDispatcher handles one conversation turn to completion.
type TurnDispatcher interface {
	Dispatch(ctx context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error)
}

type Handler struct {
	dispatcher TurnDispatcher
	accounts   contractx.AccountStore
}

func NewHandler(dispatcher TurnDispatcher, accounts contractx.AccountStore) (*Handler, error) {
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}
	return &Handler{dispatcher: dispatcher, accounts: accounts}, nil
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	s.POST("/lex/fulfillment", h.fulfillment)
	s.GET("/healthz", h.healthz)
}

func (h *Handler) fulfillment(c context.Context, ctx *app.RequestContext) {
	requestID := uuid.NewString()

	var ev lexv2x.TurnEvent
	if err := decodeJSON(ctx, &ev); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_turn_event", "invalid json")
		return
	}

	resp, err := h.dispatcher.Dispatch(c, &ev)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("session_id", ev.SessionID).
			Str("intent", ev.SessionState.Intent.Name).
			Msg("turn dispatch failed")
		writeErrorBody(ctx, consts.StatusBadGateway, "dispatch_failed", err.Error())
		return
	}

	log.Info().
		Str("request_id", requestID).
		Str("session_id", ev.SessionID).
		Str("intent", ev.SessionState.Intent.Name).
		Str("action", string(resp.SessionState.DialogAction.Type)).
		Msg("turn fulfilled")

	ctx.JSON(consts.StatusOK, resp)
}

func (h *Handler) healthz(c context.Context, ctx *app.RequestContext) {
	if h.accounts != nil {
		if err := h.accounts.Ping(c); err != nil {
			writeErrorBody(ctx, consts.StatusServiceUnavailable, "accounts_unreachable", err.Error())
			return
		}
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, out)
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
