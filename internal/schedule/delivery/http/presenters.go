package http

import (
	"net/http"

	"care-schedule/internal/model"
	"care-schedule/internal/schedule"
	"care-schedule/pkg/clocktime"
	pkgErrors "care-schedule/pkg/errors"
	"care-schedule/pkg/response"
)

// maxCheckItems bounds the all-pairs scan of a stateless check.
const maxCheckItems = 1000

var errTooManyItems = pkgErrors.NewHTTPError(http.StatusBadRequest, "too many items to check")

// --- Request DTOs ---

type activityReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (r activityReq) toModel() model.Activity {
	return model.Activity{
		ID:          r.ID,
		Title:       r.Title,
		Time:        r.Time,
		Duration:    r.Duration,
		Date:        r.Date,
		Icon:        r.Icon,
		Description: r.Description,
		Location:    r.Location,
	}
}

type appointmentReq struct {
	ID         string  `json:"id"`
	DoctorName string  `json:"doctor_name"`
	Specialty  string  `json:"specialty"`
	Hospital   string  `json:"hospital"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Duration   int     `json:"duration"`
	Rating     float64 `json:"rating"`
	Favorite   bool    `json:"favorite"`
}

func (r appointmentReq) toModel() model.Appointment {
	return model.Appointment{
		ID:         r.ID,
		DoctorName: r.DoctorName,
		Specialty:  r.Specialty,
		Hospital:   r.Hospital,
		Date:       r.Date,
		Time:       r.Time,
		Duration:   r.Duration,
		Rating:     r.Rating,
		Favorite:   r.Favorite,
	}
}

type checkReq struct {
	Activities   []activityReq    `json:"activities"`
	Appointments []appointmentReq `json:"appointments"`
}

func (r checkReq) validate() error {
	if len(r.Activities)+len(r.Appointments) > maxCheckItems {
		return errTooManyItems
	}
	return nil
}

func (r checkReq) toInput() schedule.CheckInput {
	activities := make([]model.Activity, len(r.Activities))
	for i, a := range r.Activities {
		activities[i] = a.toModel()
	}
	appointments := make([]model.Appointment, len(r.Appointments))
	for i, p := range r.Appointments {
		appointments[i] = p.toModel()
	}
	return schedule.CheckInput{Activities: activities, Appointments: appointments}
}

// ---

type dateQuery struct {
	Date string `form:"date"`
}

func (r dateQuery) toCheckStoredInput() schedule.CheckStoredInput {
	return schedule.CheckStoredInput{Date: r.Date}
}

func (r dateQuery) toListInput() schedule.ListInput {
	return schedule.ListInput{Date: r.Date}
}

// ---

type createActivityReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Time        string `json:"time"        binding:"required,max=64"`
	Duration    int    `json:"duration"    binding:"min=0"`
	Date        string `json:"date"        binding:"max=64"`
	Icon        string `json:"icon"`
	Description string `json:"description" binding:"max=1000"`
	Location    string `json:"location"    binding:"max=255"`
}

func (r createActivityReq) toInput() schedule.CreateActivityInput {
	return schedule.CreateActivityInput{
		Title:       r.Title,
		Time:        r.Time,
		Duration:    r.Duration,
		Date:        r.Date,
		Icon:        r.Icon,
		Description: r.Description,
		Location:    r.Location,
	}
}

// ---

type updateActivityReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       string  `json:"title"       binding:"omitempty,max=255"`
	Time        string  `json:"time"        binding:"omitempty,max=64"`
	Duration    *int    `json:"duration"    binding:"omitempty,min=0"`
	Date        *string `json:"date"        binding:"omitempty,max=64"`
	Icon        string  `json:"icon"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Location    string  `json:"location"    binding:"omitempty,max=255"`
}

func (r updateActivityReq) toInput() schedule.UpdateActivityInput {
	return schedule.UpdateActivityInput{
		ID:          r.ID,
		Title:       r.Title,
		Time:        r.Time,
		Duration:    r.Duration,
		Date:        r.Date,
		Icon:        r.Icon,
		Description: r.Description,
		Location:    r.Location,
	}
}

// ---

type createAppointmentReq struct {
	DoctorName string  `json:"doctor_name" binding:"required,max=255"`
	Specialty  string  `json:"specialty"   binding:"max=255"`
	Hospital   string  `json:"hospital"    binding:"max=255"`
	Date       string  `json:"date"        binding:"max=64"`
	Time       string  `json:"time"        binding:"required,max=64"`
	Duration   int     `json:"duration"    binding:"min=0"`
	Rating     float64 `json:"rating"      binding:"min=0,max=5"`
	Favorite   bool    `json:"favorite"`
}

func (r createAppointmentReq) toInput() schedule.CreateAppointmentInput {
	return schedule.CreateAppointmentInput{
		DoctorName: r.DoctorName,
		Specialty:  r.Specialty,
		Hospital:   r.Hospital,
		Date:       r.Date,
		Time:       r.Time,
		Duration:   r.Duration,
		Rating:     r.Rating,
		Favorite:   r.Favorite,
	}
}

// ---

type rescheduleReq struct {
	ID   string `json:"-"` // populated from URI param
	Date string `json:"date" binding:"max=64"`
	Time string `json:"time" binding:"required,max=64"`
}

func (r rescheduleReq) toInput() schedule.RescheduleAppointmentInput {
	return schedule.RescheduleAppointmentInput{
		ID:   r.ID,
		Date: r.Date,
		Time: r.Time,
	}
}

// --- Response DTOs ---

// conflictItemResp is one side of a conflict. Label is the activity title or
// the appointment's doctor name.
type conflictItemResp struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Time  string `json:"time"`
	Date  string `json:"date,omitempty"`
}

func newConflictItemResp(s model.Schedulable) conflictItemResp {
	resp := conflictItemResp{
		ID:   s.EntityID(),
		Kind: string(s.EntityKind()),
		Time: s.ClockTime(),
		Date: s.DateLabel(),
	}
	switch v := s.(type) {
	case *model.Activity:
		resp.Label = v.Title
	case model.Activity:
		resp.Label = v.Title
	case *model.Appointment:
		resp.Label = v.DoctorName
	case model.Appointment:
		resp.Label = v.DoctorName
	}
	return resp
}

type conflictResp struct {
	Item1        conflictItemResp `json:"item1"`
	Item2        conflictItemResp `json:"item2"`
	Type         string           `json:"type"`
	OverlapStart string           `json:"overlap_start"`
	OverlapEnd   string           `json:"overlap_end"`
	OverlapMins  int              `json:"overlap_minutes"`
}

func newConflictResp(c schedule.Conflict) conflictResp {
	return conflictResp{
		Item1:        newConflictItemResp(c.Item1),
		Item2:        newConflictItemResp(c.Item2),
		Type:         string(c.Type),
		OverlapStart: clocktime.Format(c.OverlapStart),
		OverlapEnd:   clocktime.Format(c.OverlapEnd),
		OverlapMins:  c.OverlapEnd - c.OverlapStart,
	}
}

func newConflictResps(conflicts []schedule.Conflict) []conflictResp {
	resps := make([]conflictResp, len(conflicts))
	for i, c := range conflicts {
		resps[i] = newConflictResp(c)
	}
	return resps
}

type checkResp struct {
	Conflicts []conflictResp `json:"conflicts"`
	Count     int            `json:"count"`
}

func (h *handler) newCheckResp(out schedule.CheckOutput) checkResp {
	return checkResp{
		Conflicts: newConflictResps(out.Conflicts),
		Count:     out.Count,
	}
}

type intervalResp struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Date      string `json:"date,omitempty"`
}

type intervalsResp struct {
	Intervals []intervalResp `json:"intervals"`
}

func (h *handler) newIntervalsResp(out schedule.IntervalsOutput) intervalsResp {
	items := make([]intervalResp, len(out.Intervals))
	for i, iv := range out.Intervals {
		items[i] = intervalResp{
			ID:        iv.ID,
			Kind:      string(iv.Kind),
			Start:     iv.Start,
			End:       iv.End,
			StartTime: clocktime.Format(iv.Start),
			EndTime:   clocktime.Format(iv.End),
			Date:      iv.Date,
		}
	}
	return intervalsResp{Intervals: items}
}

// ---

type activityResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Time        string            `json:"time"`
	Duration    int               `json:"duration"`
	Date        string            `json:"date"`
	Icon        string            `json:"icon"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newActivityResp(a model.Activity) activityResp {
	return activityResp{
		ID:          a.ID,
		Title:       a.Title,
		Time:        a.Time,
		Duration:    a.Duration,
		Date:        a.Date,
		Icon:        a.Icon,
		Description: a.Description,
		Location:    a.Location,
		CreatedAt:   response.DateTime(a.CreatedAt),
		UpdatedAt:   response.DateTime(a.UpdatedAt),
	}
}

type activityDetailResp struct {
	Activity  activityResp   `json:"activity"`
	Conflicts []conflictResp `json:"conflicts"`
}

func (h *handler) newActivityDetailResp(out schedule.ActivityOutput) activityDetailResp {
	return activityDetailResp{
		Activity:  newActivityResp(out.Activity),
		Conflicts: newConflictResps(out.Conflicts),
	}
}

type listActivitiesResp struct {
	Activities []activityResp `json:"activities"`
	Total      int            `json:"total"`
}

func (h *handler) newListActivitiesResp(out schedule.ListActivitiesOutput) listActivitiesResp {
	items := make([]activityResp, len(out.Activities))
	for i, a := range out.Activities {
		items[i] = newActivityResp(a)
	}
	return listActivitiesResp{Activities: items, Total: out.Total}
}

// ---

type appointmentResp struct {
	ID         string            `json:"id"`
	DoctorName string            `json:"doctor_name"`
	Specialty  string            `json:"specialty"`
	Hospital   string            `json:"hospital"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Duration   int               `json:"duration"`
	Rating     float64           `json:"rating"`
	Favorite   bool              `json:"favorite"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

func newAppointmentResp(p model.Appointment) appointmentResp {
	return appointmentResp{
		ID:         p.ID,
		DoctorName: p.DoctorName,
		Specialty:  p.Specialty,
		Hospital:   p.Hospital,
		Date:       p.Date,
		Time:       p.Time,
		Duration:   p.Duration,
		Rating:     p.Rating,
		Favorite:   p.Favorite,
		CreatedAt:  response.DateTime(p.CreatedAt),
		UpdatedAt:  response.DateTime(p.UpdatedAt),
	}
}

type appointmentDetailResp struct {
	Appointment appointmentResp `json:"appointment"`
	Conflicts   []conflictResp  `json:"conflicts"`
}

func (h *handler) newAppointmentDetailResp(out schedule.AppointmentOutput) appointmentDetailResp {
	return appointmentDetailResp{
		Appointment: newAppointmentResp(out.Appointment),
		Conflicts:   newConflictResps(out.Conflicts),
	}
}

type listAppointmentsResp struct {
	Appointments []appointmentResp `json:"appointments"`
	Total        int               `json:"total"`
}

func (h *handler) newListAppointmentsResp(out schedule.ListAppointmentsOutput) listAppointmentsResp {
	items := make([]appointmentResp, len(out.Appointments))
	for i, p := range out.Appointments {
		items[i] = newAppointmentResp(p)
	}
	return listAppointmentsResp{Appointments: items, Total: out.Total}
}
