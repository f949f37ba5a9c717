package http

import (
	"github.com/gin-gonic/gin"
)

// processCheckReq binds the activity and appointment lists of a stateless check.
func (h *handler) processCheckReq(c *gin.Context) (checkReq, error) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDateQuery binds the optional ?date= filter.
func (h *handler) processDateQuery(c *gin.Context) (dateQuery, error) {
	var req dateQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateActivityReq(c *gin.Context) (createActivityReq, error) {
	var req createActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateActivityReq binds the partial update body plus the URI id.
func (h *handler) processUpdateActivityReq(c *gin.Context) (updateActivityReq, error) {
	var req updateActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processCreateAppointmentReq(c *gin.Context) (createAppointmentReq, error) {
	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
