package handler

import (
	"net/http"
	"strconv"

	"forum_api/internal/middleware"
	"forum_api/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

type VoteReq struct {
	Value int8 `json:"value" binding:"required"`
}

func (h *VoteHandler) VotePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	userID, _ := middleware.UserID(c)

	vote, err := h.svc.VotePost(c.Request.Context(), userID, postID, req.Value)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": vote})
}

func (h *VoteHandler) VoteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	userID, _ := middleware.UserID(c)

	vote, err := h.svc.VoteComment(c.Request.Context(), userID, commentID, req.Value)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": vote})
}
