package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kinshare/internal/middleware"
	"kinshare/internal/service"
)

// CollectionHandler handles collection, membership, and relation endpoints.
type CollectionHandler struct {
	memberships service.MembershipService
	relations   service.RelationService
	deletions   service.DeletionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(
	memberships service.MembershipService,
	relations service.RelationService,
	deletions service.DeletionService,
) *CollectionHandler {
	return &CollectionHandler{
		memberships: memberships,
		relations:   relations,
		deletions:   deletions,
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	collection, err := h.memberships.Create(c.Request.Context(), service.CreateCollectionInput{
		Name:    req.Name,
		OwnerID: ownerID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, collection)
}

// GetByID handles GET /api/v1/collections/:id
func (h *CollectionHandler) GetByID(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collection, err := h.memberships.GetByID(c.Request.Context(), collectionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, collection)
}

// Update handles PATCH /api/v1/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed body")
		return
	}

	collection, err := h.memberships.Update(c.Request.Context(), collectionID, service.UpdateCollectionInput{
		Name: req.Name,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, collection)
}

// Delete handles DELETE /api/v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deletions.DeleteCollection(c.Request.Context(), collectionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondNoContent(c)
}

// ListMembers handles GET /api/v1/collections/:id/members
func (h *CollectionHandler) ListMembers(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.memberships.ListMembers(c.Request.Context(), collectionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, members)
}

// AddMember handles POST /api/v1/collections/:id/members
func (h *CollectionHandler) AddMember(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id is required")
		return
	}

	if err := h.memberships.AddMember(c.Request.Context(), collectionID, req.UserID); err != nil {
		HandleError(c, err)
		return
	}

	RespondNoContent(c)
}

// RemoveMember handles DELETE /api/v1/collections/:id/members/:userId
func (h *CollectionHandler) RemoveMember(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.memberships.RemoveMember(c.Request.Context(), collectionID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondNoContent(c)
}

// ListRelated handles GET /api/v1/collections/:id/related
func (h *CollectionHandler) ListRelated(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	related, err := h.relations.ListRelated(c.Request.Context(), collectionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, related)
}

// AddRelation handles POST /api/v1/collections/:id/related
func (h *CollectionHandler) AddRelation(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		CollectionID uuid.UUID `json:"collection_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection_id is required")
		return
	}

	if err := h.relations.AddRelation(c.Request.Context(), collectionID, req.CollectionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondNoContent(c)
}

// RemoveRelation handles DELETE /api/v1/collections/:id/related/:relatedId
func (h *CollectionHandler) RemoveRelation(c *gin.Context) {
	collectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	relatedID, ok := parseIDParam(c, "relatedId")
	if !ok {
		return
	}

	if err := h.relations.RemoveRelation(c.Request.Context(), collectionID, relatedID); err != nil {
		HandleError(c, err)
		return
	}

	RespondNoContent(c)
}
