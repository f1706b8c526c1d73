package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tonimnim/Komiut-sub007/internal/handlers"
	"github.com/tonimnim/Komiut-sub007/internal/handlers/mocks"
	"github.com/tonimnim/Komiut-sub007/internal/models"
)

func setupRouter(h *handlers.TopupHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/topups", h.StartTopup)
	r.GET("/topups/:id", h.GetTopup)
	r.GET("/topups/:id/events", h.StreamTopupEvents)
	r.DELETE("/topups/:id", h.CancelTopup)
	return r
}

func TestStartTopup_Created(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	tx := &models.TopupTransaction{
		ID:             "tx-1",
		AccountID:      "acct_1",
		Amount:         decimal.NewFromInt(200),
		PayerReference: "0712345678",
		Method:         models.MethodMobileMoney,
		State:          models.StateInitiated,
	}
	svc.EXPECT().Start(mock.Anything, mock.Anything).Return(tx, nil).Once()

	body := `{"account_id":"acct_1","amount":"200","payer_reference":"0712345678","method":"mobile_money"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/topups", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.TopupTransaction
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "tx-1", got.ID)
	assert.Equal(t, models.StateInitiated, got.State)
}

func TestStartTopup_ValidationFailureReturnsTerminalTransaction(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	tx := &models.TopupTransaction{
		ID:            "tx-2",
		State:         models.StateFailed,
		FailureReason: "amount 9.99 outside allowed range [10, 150000]",
	}
	svc.EXPECT().Start(mock.Anything, mock.Anything).
		Return(tx, fmt.Errorf("%w: amount out of range", models.ErrValidation)).
		Once()

	body := `{"account_id":"acct_1","amount":"9.99","payer_reference":"0712345678","method":"mobile_money"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/topups", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FAILED")
}

func TestStartTopup_MalformedBody(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/topups", bytes.NewBufferString("{not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTopup_Found(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	tx := &models.TopupTransaction{ID: "tx-1", State: models.StateSucceeded, ResultReceipt: "RCPT-9"}
	svc.EXPECT().CurrentState(mock.Anything, "tx-1").Return(tx, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/topups/tx-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RCPT-9")
}

func TestGetTopup_Unknown(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	svc.EXPECT().CurrentState(mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: nope", models.ErrUnknownTransaction)).
		Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/topups/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelTopup_Accepted(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	svc.EXPECT().Cancel(mock.Anything, "tx-1").Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/topups/tx-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// closeNotifyRecorder adds http.CloseNotifier to httptest.ResponseRecorder,
// which gin's Stream requires.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return c.closed }

func TestStreamTopupEvents_DeliversSnapshotsUntilClose(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	ch := make(chan models.TopupTransaction, 2)
	ch <- models.TopupTransaction{ID: "tx-1", State: models.StatePolling}
	ch <- models.TopupTransaction{ID: "tx-1", State: models.StateSucceeded}
	close(ch)
	svc.EXPECT().Subscribe(mock.Anything, "tx-1").Return((<-chan models.TopupTransaction)(ch), nil).Once()

	w := newCloseNotifyRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/topups/tx-1/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "POLLING")
	assert.Contains(t, w.Body.String(), "SUCCEEDED")
}

func TestStreamTopupEvents_UnknownTransaction(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	router := setupRouter(handlers.NewTopupHandler(svc))

	svc.EXPECT().Subscribe(mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: nope", models.ErrUnknownTransaction)).
		Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/topups/nope/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleEvents_GatewayCallback(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	h := handlers.NewTopupHandler(svc)

	evt := models.GatewayCallbackEvent{
		ExternalReference: "ext-1",
		TransactionID:     "tx-1",
		Result:            models.GatewayResultSucceeded,
		Receipt:           "RCPT-9",
	}
	svc.EXPECT().ApplyGatewayCallback(mock.Anything, evt).Return(nil).Once()

	payload, _ := json.Marshal(evt)
	err := h.HandleEvents(context.Background(), models.GatewayCallbackTopic, payload)
	assert.NoError(t, err)
}

func TestHandleEvents_RejectsUnknownTopicAndBadPayload(t *testing.T) {
	svc := mocks.NewMockTopupService(t)
	h := handlers.NewTopupHandler(svc)

	err := h.HandleEvents(context.Background(), "some.other.topic", []byte(`{}`))
	assert.Error(t, err)

	err = h.HandleEvents(context.Background(), models.GatewayCallbackTopic, []byte("{not json"))
	assert.Error(t, err)
}
