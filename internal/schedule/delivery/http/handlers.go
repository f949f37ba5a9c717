package http

import (
	"github.com/gin-gonic/gin"

	"care-schedule/pkg/response"
)

// CheckConflicts godoc
// @Summary     Check a schedule for conflicts
// @Description Runs the conflict detector over the supplied activities and appointments. Nothing is stored.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body     checkReq true "Activities and appointments"
// @Success     200  {object} checkResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/schedule/conflicts/check [POST]
func (h *handler) CheckConflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCheckReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Check(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.CheckConflicts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckResp(output))
}

// Intervals godoc
// @Summary     Preview derived intervals
// @Description Returns the [start, end) window, in minutes since midnight, the detector derives for every supplied entity.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body     checkReq true "Activities and appointments"
// @Success     200  {object} intervalsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/intervals [POST]
func (h *handler) Intervals(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCheckReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Intervals(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.Intervals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIntervalsResp(output))
}

// StoredConflicts godoc
// @Summary     Conflicts in the stored schedule
// @Description Runs the conflict detector over stored activities and appointments. A date keeps entities with that label plus undated ones.
// @Tags        Schedule
// @Produce     json
// @Param       date query    string false "Date label, e.g. Oct 24"
// @Success     200  {object} checkResp
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/conflicts [GET]
func (h *handler) StoredConflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckStored(ctx, req.toCheckStoredInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.StoredConflicts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCheckResp(output))
}

// CreateActivity godoc
// @Summary     Create an activity
// @Description Stores an activity and returns it with the conflicts it takes part in.
// @Tags        Activities
// @Accept      json
// @Produce     json
// @Param       body body     createActivityReq true "Activity"
// @Success     201  {object} activityDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/activities [POST]
func (h *handler) CreateActivity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateActivityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateActivity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.CreateActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newActivityDetailResp(output))
}

// ListActivities godoc
// @Summary     List activities
// @Tags        Activities
// @Produce     json
// @Param       date query    string false "Exact date label"
// @Success     200  {object} listActivitiesResp
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/activities [GET]
func (h *handler) ListActivities(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListActivities(ctx, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.ListActivities: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListActivitiesResp(output))
}

// DetailActivity godoc
// @Summary     Get activity detail
// @Tags        Activities
// @Produce     json
// @Param       id  path     string true "Activity ID"
// @Success     200 {object} activityDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/activities/{id} [GET]
func (h *handler) DetailActivity(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.DetailActivity(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.DetailActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newActivityDetailResp(output))
}

// UpdateActivity godoc
// @Summary     Update an activity
// @Description Partial update. Omitted fields keep their stored value; duration and date may be cleared explicitly.
// @Tags        Activities
// @Accept      json
// @Produce     json
// @Param       id   path     string            true "Activity ID"
// @Param       body body     updateActivityReq true "Fields to update"
// @Success     200  {object} activityDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/activities/{id} [PUT]
func (h *handler) UpdateActivity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateActivityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateActivity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.UpdateActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newActivityDetailResp(output))
}

// DeleteActivity godoc
// @Summary     Delete an activity
// @Tags        Activities
// @Produce     json
// @Param       id  path     string true "Activity ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/activities/{id} [DELETE]
func (h *handler) DeleteActivity(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteActivity(ctx, id); err != nil {
		h.l.Errorf(ctx, "schedule.http.DeleteActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateAppointment godoc
// @Summary     Create an appointment
// @Description Stores a doctor appointment and returns it with the conflicts it takes part in.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       body body     createAppointmentReq true "Appointment"
// @Success     201  {object} appointmentDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/appointments [POST]
func (h *handler) CreateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateAppointmentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateAppointment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.CreateAppointment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newAppointmentDetailResp(output))
}

// ListAppointments godoc
// @Summary     List appointments
// @Tags        Appointments
// @Produce     json
// @Param       date query    string false "Exact date label"
// @Success     200  {object} listAppointmentsResp
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/appointments [GET]
func (h *handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListAppointments(ctx, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.ListAppointments: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAppointmentsResp(output))
}

// DetailAppointment godoc
// @Summary     Get appointment detail
// @Tags        Appointments
// @Produce     json
// @Param       id  path     string true "Appointment ID"
// @Success     200 {object} appointmentDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/appointments/{id} [GET]
func (h *handler) DetailAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.DetailAppointment(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.DetailAppointment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAppointmentDetailResp(output))
}

// RescheduleAppointment godoc
// @Summary     Reschedule an appointment
// @Description Moves an appointment to a new time slot and, when given, a new date.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       id   path     string        true "Appointment ID"
// @Param       body body     rescheduleReq true "New slot"
// @Success     200  {object} appointmentDetailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/appointments/{id}/reschedule [PUT]
func (h *handler) RescheduleAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RescheduleAppointment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.RescheduleAppointment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAppointmentDetailResp(output))
}

// DeleteAppointment godoc
// @Summary     Delete an appointment
// @Tags        Appointments
// @Produce     json
// @Param       id  path     string true "Appointment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/appointments/{id} [DELETE]
func (h *handler) DeleteAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteAppointment(ctx, id); err != nil {
		h.l.Errorf(ctx, "schedule.http.DeleteAppointment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
