package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	contractx "alexbuddy/agent/contract"
	lexv2x "alexbuddy/agent/lexv2"
)

type fakeDispatcher struct {
	resp   *lexv2x.Response
	err    error
	events []*lexv2x.TurnEvent
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, ev *lexv2x.TurnEvent) (*lexv2x.Response, error) {
	f.events = append(f.events, ev)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeAccounts struct {
	pingErr error
}

func (f *fakeAccounts) Lookup(ctx context.Context, username string) (*contractx.Account, error) {
	return nil, contractx.ErrAccountNotFound
}

func (f *fakeAccounts) Ping(ctx context.Context) error {
	return f.pingErr
}

func TestFulfillmentDispatchesTurnEvent(t *testing.T) {
	dispatcher := &fakeDispatcher{
		resp: lexv2x.ElicitIntent(map[string]string{}, "hello"),
	}
	h, err := NewHandler(dispatcher, &fakeAccounts{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	body := `{
		"sessionState": {"intent": {"name": "VerifyIdentity"}},
		"sessionId": "s1",
		"invocationSource": "DialogCodeHook",
		"inputTranscript": "hi"
	}`
	rc := &app.RequestContext{}
	rc.Request.SetBodyString(body)

	h.fulfillment(context.Background(), rc)

	if rc.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, want 200", rc.Response.StatusCode())
	}
	if len(dispatcher.events) != 1 {
		t.Fatalf("dispatched events = %d, want 1", len(dispatcher.events))
	}
	ev := dispatcher.events[0]
	if ev.SessionID != "s1" || ev.SessionState.Intent.Name != "VerifyIdentity" {
		t.Fatalf("decoded event = %+v", ev)
	}

	var resp lexv2x.Response
	if err := json.Unmarshal(rc.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionState.DialogAction.Type != lexv2x.ActionElicitIntent {
		t.Fatalf("relayed action = %q, want ElicitIntent", resp.SessionState.DialogAction.Type)
	}
}

func TestFulfillmentRejectsInvalidJSON(t *testing.T) {
	h, err := NewHandler(&fakeDispatcher{}, nil)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rc := &app.RequestContext{}
	rc.Request.SetBodyString("{not json")

	h.fulfillment(context.Background(), rc)

	if rc.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rc.Response.StatusCode())
	}
}

func TestFulfillmentSurfacesDispatchFailure(t *testing.T) {
	h, err := NewHandler(&fakeDispatcher{err: errors.New("model down")}, nil)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rc := &app.RequestContext{}
	rc.Request.SetBodyString(`{"sessionId":"s1","sessionState":{"intent":{"name":"X"}}}`)

	h.fulfillment(context.Background(), rc)

	if rc.Response.StatusCode() != consts.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rc.Response.StatusCode())
	}
}

func TestHealthzReportsAccountStore(t *testing.T) {
	h, err := NewHandler(&fakeDispatcher{}, &fakeAccounts{pingErr: errors.New("db unreachable")})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rc := &app.RequestContext{}
	h.healthz(context.Background(), rc)

	if rc.Response.StatusCode() != consts.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rc.Response.StatusCode())
	}
}

func TestHealthzOK(t *testing.T) {
	h, err := NewHandler(&fakeDispatcher{}, &fakeAccounts{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rc := &app.RequestContext{}
	h.healthz(context.Background(), rc)

	if rc.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, want 200", rc.Response.StatusCode())
	}
}

func TestNewHandlerRequiresDispatcher(t *testing.T) {
	if _, err := NewHandler(nil, nil); err == nil {
		t.Fatal("expected error for nil dispatcher")
	}
}
