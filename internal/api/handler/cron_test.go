package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
)

type fakeCronJob struct {
	running  bool
	triggers int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggers++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": f.running}
}

func cronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)
	params := httprouter.Params{{Key: "type", Value: cronType}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunCronJob(t *testing.T) {
	t.Run("dispara a sincronização do Paddle", func(t *testing.T) {
		paddle := &fakeCronJob{}
		rec := httptest.NewRecorder()

		RunCronJob(CronJobServices{PaddleSync: paddle}).ServeHTTP(rec, cronRequest(CronJobTypePaddleSync))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, paddle.triggers)
	})

	t.Run("execução em andamento", func(t *testing.T) {
		snapshots := &fakeCronJob{running: true}
		rec := httptest.NewRecorder()

		RunCronJob(CronJobServices{ReportSnapshot: snapshots}).ServeHTTP(rec, cronRequest(CronJobTypeReportSnapshot))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Zero(t, snapshots.triggers)
	})

	t.Run("serviço não configurado", func(t *testing.T) {
		rec := httptest.NewRecorder()

		RunCronJob(CronJobServices{}).ServeHTTP(rec, cronRequest(CronJobTypePaddleSync))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
	})

	t.Run("tipo inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()

		RunCronJob(CronJobServices{}).ServeHTTP(rec, cronRequest("meta"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("todas ignoram serviços ausentes", func(t *testing.T) {
		snapshots := &fakeCronJob{}
		rec := httptest.NewRecorder()

		RunCronJob(CronJobServices{ReportSnapshot: snapshots}).ServeHTTP(rec, cronRequest(CronJobTypeAll))

		require.Equal(t, http.StatusAccepted, rec.Code)
		var body struct {
			Started map[string]bool `json:"started"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, map[string]bool{CronJobTypeReportSnapshot: true}, body.Started)
	})
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	GetCronStatus(CronJobServices{PaddleSync: &fakeCronJob{running: true}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body[CronJobTypePaddleSync]["running"])
	assert.Equal(t, false, body[CronJobTypeReportSnapshot]["configured"])
}
