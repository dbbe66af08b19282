package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/toolshare/toolshare-server/internal/models"
)

// MyGroups handles GET /api/groups
func (h *Handler) MyGroups(c *gin.Context) {
	groups, err := h.svc.MyGroups(c.Request.Context(), sessionUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "groups": groups})
}

// CreateGroup handles POST /api/groups
func (h *Handler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	group, err := h.svc.CreateGroup(c.Request.Context(), sessionUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "group": group})
}

// UpdateGroup handles PUT /api/groups/:id
func (h *Handler) UpdateGroup(c *gin.Context) {
	var req models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	group, err := h.svc.UpdateGroup(c.Request.Context(), sessionUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "group": group})
}

// DeleteGroup handles DELETE /api/groups/:id
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.svc.DeleteGroup(c.Request.Context(), sessionUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// JoinGroup handles POST /api/groups/join. Joining a group you already
// belong to is a soft success.
func (h *Handler) JoinGroup(c *gin.Context) {
	var req models.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	group, alreadyMember, err := h.svc.JoinGroup(c.Request.Context(), sessionUserID(c), req.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.JoinGroupResponse{
		Status:        "success",
		AlreadyMember: alreadyMember,
		Group:         *group,
	}
	if alreadyMember {
		resp.Message = "You are already a member of this group"
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveMember handles DELETE /api/groups/:id/members/:userId
func (h *Handler) RemoveMember(c *gin.Context) {
	group, err := h.svc.RemoveMember(c.Request.Context(), sessionUserID(c), c.Param("id"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "group": group})
}

// GroupInvite handles GET /api/groups/:id/invite
func (h *Handler) GroupInvite(c *gin.Context) {
	resp, err := h.svc.GroupInvite(c.Request.Context(), sessionUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ShareTools handles POST /api/groups/:id/tools
func (h *Handler) ShareTools(c *gin.Context) {
	var req models.ShareToolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.svc.ShareToolsToGroup(c.Request.Context(), sessionUserID(c), c.Param("id"), req.ToolIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
