package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"care-schedule/internal/middleware"
	"care-schedule/internal/model"
	"care-schedule/internal/schedule"
	"care-schedule/internal/schedule/usecase"
	"care-schedule/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUseCase embeds the real use case for the stateless checks and lets
// tests override the stored-entity calls.
type stubUseCase struct {
	schedule.UseCase

	createActivity func(schedule.CreateActivityInput) (schedule.ActivityOutput, error)
	detailActivity func(string) (schedule.ActivityOutput, error)
	updateActivity func(schedule.UpdateActivityInput) (schedule.ActivityOutput, error)
	deleteAppt     func(string) error
	reschedule     func(schedule.RescheduleAppointmentInput) (schedule.AppointmentOutput, error)
	checkStored    func(schedule.CheckStoredInput) (schedule.CheckOutput, error)
}

func (s *stubUseCase) CreateActivity(ctx context.Context, in schedule.CreateActivityInput) (schedule.ActivityOutput, error) {
	return s.createActivity(in)
}

func (s *stubUseCase) DetailActivity(ctx context.Context, id string) (schedule.ActivityOutput, error) {
	return s.detailActivity(id)
}

func (s *stubUseCase) UpdateActivity(ctx context.Context, in schedule.UpdateActivityInput) (schedule.ActivityOutput, error) {
	return s.updateActivity(in)
}

func (s *stubUseCase) DeleteAppointment(ctx context.Context, id string) error {
	return s.deleteAppt(id)
}

func (s *stubUseCase) RescheduleAppointment(ctx context.Context, in schedule.RescheduleAppointmentInput) (schedule.AppointmentOutput, error) {
	return s.reschedule(in)
}

func (s *stubUseCase) CheckStored(ctx context.Context, in schedule.CheckStoredInput) (schedule.CheckOutput, error) {
	return s.checkStored(in)
}

func newTestRouter(uc schedule.UseCase) *gin.Engine {
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/schedule"), New(l, uc), middleware.New(l, middleware.RateLimitConfig{}))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func TestCheckConflictsHandler(t *testing.T) {
	r := newTestRouter(&stubUseCase{UseCase: usecase.New(nil, log.NewNop())})

	body := `{
		"activities": [{"id": "a1", "title": "Yoga", "time": "10:00 AM", "duration": 30, "date": "Oct 24"}],
		"appointments": [{"id": "p1", "doctor_name": "Dr. Lee", "time": "10:15 AM", "duration": 45, "date": "Oct 24"}]
	}`
	w := do(r, http.MethodPost, "/api/v1/schedule/conflicts/check", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp checkResp
	decode(t, w, &resp)
	if resp.Count != 1 || len(resp.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %+v", resp)
	}
	c := resp.Conflicts[0]
	if c.Type != "activity-appointment" {
		t.Errorf("type = %s", c.Type)
	}
	if c.Item1.ID != "a1" || c.Item1.Label != "Yoga" || c.Item2.ID != "p1" || c.Item2.Label != "Dr. Lee" {
		t.Errorf("unexpected items %+v / %+v", c.Item1, c.Item2)
	}
	if c.OverlapStart != "10:15 AM" || c.OverlapEnd != "10:30 AM" || c.OverlapMins != 15 {
		t.Errorf("overlap = %s-%s (%d)", c.OverlapStart, c.OverlapEnd, c.OverlapMins)
	}
}

func TestCheckConflictsHandler_PastMidnight(t *testing.T) {
	r := newTestRouter(&stubUseCase{UseCase: usecase.New(nil, log.NewNop())})

	body := `{"activities": [
		{"id": "a1", "title": "Night meds", "time": "11:45 PM", "duration": 30},
		{"id": "a2", "title": "Night walk", "time": "23:50", "duration": 60}
	]}`
	w := do(r, http.MethodPost, "/api/v1/schedule/conflicts/check", body)

	var resp checkResp
	decode(t, w, &resp)
	if resp.Count != 1 {
		t.Fatalf("count = %d", resp.Count)
	}
	if c := resp.Conflicts[0]; c.OverlapStart != "11:50 PM" || c.OverlapEnd != "12:15 AM +1" || c.OverlapMins != 25 {
		t.Errorf("overlap = %s-%s (%d)", c.OverlapStart, c.OverlapEnd, c.OverlapMins)
	}
}

func TestCheckConflictsHandler_SharedIDs(t *testing.T) {
	r := newTestRouter(&stubUseCase{UseCase: usecase.New(nil, log.NewNop())})

	// An activity and an appointment may share an id; each side keeps its own kind.
	body := `{
		"activities": [{"id": "1", "title": "Church", "time": "10:00 AM"}],
		"appointments": [{"id": "1", "doctor_name": "Dr. Ana", "time": "10:00 AM"}]
	}`
	w := do(r, http.MethodPost, "/api/v1/schedule/conflicts/check", body)

	var resp checkResp
	decode(t, w, &resp)
	if resp.Count != 1 {
		t.Fatalf("count = %d", resp.Count)
	}
	if got := resp.Conflicts[0]; got.Item1.Kind != "activity" || got.Item2.Kind != "appointment" {
		t.Errorf("kinds = %s/%s", got.Item1.Kind, got.Item2.Kind)
	}
}

func TestCheckConflictsHandler_BadBody(t *testing.T) {
	r := newTestRouter(&stubUseCase{UseCase: usecase.New(nil, log.NewNop())})

	w := do(r, http.MethodPost, "/api/v1/schedule/conflicts/check", `{"activities": "nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestIntervalsHandler(t *testing.T) {
	r := newTestRouter(&stubUseCase{UseCase: usecase.New(nil, log.NewNop())})

	body := `{"activities": [{"id": "a1", "time": "09:00 AM"}], "appointments": [{"id": "p1", "time": "10:30am - 5:30pm"}]}`
	w := do(r, http.MethodPost, "/api/v1/schedule/intervals", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp intervalsResp
	decode(t, w, &resp)
	want := []intervalResp{
		{ID: "a1", Kind: "activity", Start: 540, End: 570, StartTime: "9:00 AM", EndTime: "9:30 AM"},
		{ID: "p1", Kind: "appointment", Start: 630, End: 690, StartTime: "10:30 AM", EndTime: "11:30 AM"},
	}
	if len(resp.Intervals) != len(want) {
		t.Fatalf("intervals = %+v", resp.Intervals)
	}
	for i := range want {
		if resp.Intervals[i] != want[i] {
			t.Errorf("interval %d = %+v, want %+v", i, resp.Intervals[i], want[i])
		}
	}
}

func TestStoredConflictsHandler(t *testing.T) {
	var got schedule.CheckStoredInput
	uc := &stubUseCase{checkStored: func(in schedule.CheckStoredInput) (schedule.CheckOutput, error) {
		got = in
		return schedule.CheckOutput{Conflicts: []schedule.Conflict{}}, nil
	}}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/schedule/conflicts?date=Oct+24", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.Date != "Oct 24" {
		t.Errorf("date = %q", got.Date)
	}
	var resp checkResp
	decode(t, w, &resp)
	if resp.Conflicts == nil {
		t.Error("conflicts should encode as an empty list")
	}
}

func TestCreateActivityHandler(t *testing.T) {
	tcs := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "ok", body: `{"title": "Walk", "time": "9:00 AM"}`, wantCode: http.StatusCreated},
		{name: "missing time", body: `{"title": "Walk"}`, wantCode: http.StatusBadRequest},
		{name: "negative duration", body: `{"title": "Walk", "time": "9:00", "duration": -5}`, wantCode: http.StatusBadRequest},
		{name: "use case validation", body: `{"title": " ", "time": "9:00"}`, ucErr: schedule.ErrEmptyTitle, wantCode: http.StatusBadRequest},
		{name: "storage failure", body: `{"title": "Walk", "time": "9:00"}`, ucErr: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{createActivity: func(in schedule.CreateActivityInput) (schedule.ActivityOutput, error) {
				if tc.ucErr != nil {
					return schedule.ActivityOutput{}, tc.ucErr
				}
				return schedule.ActivityOutput{
					Activity:  model.Activity{ID: "new", Title: in.Title, Time: in.Time},
					Conflicts: []schedule.Conflict{},
				}, nil
			}}
			w := do(newTestRouter(uc), http.MethodPost, "/api/v1/schedule/activities", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusInternalServerError {
				if strings.Contains(w.Body.String(), "disk full") {
					t.Error("internal error cause leaked to client")
				}
			}
			if tc.wantCode == http.StatusCreated {
				var resp activityDetailResp
				decode(t, w, &resp)
				if resp.Activity.ID != "new" || resp.Activity.Title != "Walk" {
					t.Errorf("unexpected activity %+v", resp.Activity)
				}
			}
		})
	}
}

func TestDetailActivityHandler_NotFound(t *testing.T) {
	uc := &stubUseCase{detailActivity: func(id string) (schedule.ActivityOutput, error) {
		return schedule.ActivityOutput{}, schedule.ErrActivityNotFound
	}}

	w := do(newTestRouter(uc), http.MethodGet, "/api/v1/schedule/activities/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decode(t, w, nil); env.ErrorCode != http.StatusNotFound {
		t.Errorf("error_code = %d", env.ErrorCode)
	}
}

func TestUpdateActivityHandler(t *testing.T) {
	var got schedule.UpdateActivityInput
	uc := &stubUseCase{updateActivity: func(in schedule.UpdateActivityInput) (schedule.ActivityOutput, error) {
		got = in
		return schedule.ActivityOutput{Activity: model.Activity{ID: in.ID}}, nil
	}}

	w := do(newTestRouter(uc), http.MethodPut, "/api/v1/schedule/activities/a1", `{"time": "2:30 PM", "date": ""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.ID != "a1" || got.Time != "2:30 PM" {
		t.Errorf("input = %+v", got)
	}
	if got.Date == nil || *got.Date != "" {
		t.Error("explicit empty date should be passed through")
	}
	if got.Duration != nil {
		t.Error("omitted duration should stay nil")
	}
}

func TestRescheduleAppointmentHandler(t *testing.T) {
	var got schedule.RescheduleAppointmentInput
	uc := &stubUseCase{reschedule: func(in schedule.RescheduleAppointmentInput) (schedule.AppointmentOutput, error) {
		got = in
		return schedule.AppointmentOutput{Appointment: model.Appointment{ID: in.ID, Date: in.Date, Time: in.Time}}, nil
	}}
	r := newTestRouter(uc)

	w := do(r, http.MethodPut, "/api/v1/schedule/appointments/p1/reschedule", `{"date": "Oct 12", "time": "11:00 AM"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.ID != "p1" || got.Date != "Oct 12" || got.Time != "11:00 AM" {
		t.Errorf("input = %+v", got)
	}

	w = do(r, http.MethodPut, "/api/v1/schedule/appointments/p1/reschedule", `{"date": "Oct 12"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing time status = %d, want 400", w.Code)
	}
}

func TestDeleteAppointmentHandler(t *testing.T) {
	uc := &stubUseCase{deleteAppt: func(id string) error {
		if id == "p1" {
			return nil
		}
		return schedule.ErrAppointmentNotFound
	}}
	r := newTestRouter(uc)

	if w := do(r, http.MethodDelete, "/api/v1/schedule/appointments/p1", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/schedule/appointments/p2", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
