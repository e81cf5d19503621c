package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
	"kinshare/internal/handler"
	"kinshare/internal/middleware"
	"kinshare/internal/service"
	"kinshare/mocks"
)

type handlerFixture struct {
	router      *gin.Engine
	memberships *mocks.MockMembershipService
	relations   *mocks.MockRelationService
	deletions   *mocks.MockDeletionService
	userID      uuid.UUID
}

func setupCollectionHandler() *handlerFixture {
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		memberships: new(mocks.MockMembershipService),
		relations:   new(mocks.MockRelationService),
		deletions:   new(mocks.MockDeletionService),
		userID:      uuid.New(),
	}

	h := handler.NewCollectionHandler(f.memberships, f.relations, f.deletions)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, f.userID)
	})
	r.POST("/collections", h.Create)
	r.GET("/collections/:id", h.GetByID)
	r.PATCH("/collections/:id", h.Update)
	r.DELETE("/collections/:id", h.Delete)
	r.GET("/collections/:id/members", h.ListMembers)
	r.POST("/collections/:id/members", h.AddMember)
	r.DELETE("/collections/:id/members/:userId", h.RemoveMember)
	r.GET("/collections/:id/related", h.ListRelated)
	r.POST("/collections/:id/related", h.AddRelation)
	r.DELETE("/collections/:id/related/:relatedId", h.RemoveRelation)

	f.router = r
	return f
}

func (f *handlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestCollectionHandler_Create_Success(t *testing.T) {
	f := setupCollectionHandler()

	created := &domain.Collection{
		ID:      uuid.New(),
		Name:    "Summer Trip",
		OwnerID: f.userID,
		Members: domain.UUIDList{f.userID},
	}
	f.memberships.On("Create", mock.Anything, service.CreateCollectionInput{
		Name:    "Summer Trip",
		OwnerID: f.userID,
	}).Return(created, nil)

	w := f.do(http.MethodPost, "/collections", gin.H{"name": "Summer Trip"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), created.ID.String())
	f.memberships.AssertExpectations(t)
}

func TestCollectionHandler_Create_MissingName(t *testing.T) {
	f := setupCollectionHandler()

	w := f.do(http.MethodPost, "/collections", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.memberships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCollectionHandler_GetByID_NotFound(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	f.memberships.On("GetByID", mock.Anything, collectionID).Return(nil, domain.ErrCollectionNotFound)

	w := f.do(http.MethodGet, "/collections/"+collectionID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCollectionHandler_GetByID_InvalidID(t *testing.T) {
	f := setupCollectionHandler()

	w := f.do(http.MethodGet, "/collections/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.memberships.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCollectionHandler_Delete_Success(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	f.deletions.On("DeleteCollection", mock.Anything, collectionID).Return(nil)

	w := f.do(http.MethodDelete, "/collections/"+collectionID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	f.deletions.AssertExpectations(t)
}

func TestCollectionHandler_AddMember_Success(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	newUserID := uuid.New()
	f.memberships.On("AddMember", mock.Anything, collectionID, newUserID).Return(nil)

	w := f.do(http.MethodPost, "/collections/"+collectionID.String()+"/members", gin.H{"user_id": newUserID})

	assert.Equal(t, http.StatusNoContent, w.Code)
	f.memberships.AssertExpectations(t)
}

func TestCollectionHandler_RemoveMember_OwnerRejected(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	ownerID := uuid.New()
	f.memberships.On("RemoveMember", mock.Anything, collectionID, ownerID).
		Return(domain.ErrCannotRemoveOwner)

	w := f.do(http.MethodDelete, "/collections/"+collectionID.String()+"/members/"+ownerID.String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CANNOT_REMOVE_OWNER")
}

func TestCollectionHandler_AddRelation_Conflict(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	relatedID := uuid.New()
	f.relations.On("AddRelation", mock.Anything, collectionID, relatedID).
		Return(domain.ErrAlreadyRelated)

	w := f.do(http.MethodPost, "/collections/"+collectionID.String()+"/related", gin.H{"collection_id": relatedID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCollectionHandler_AddRelation_SelfRejected(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	f.relations.On("AddRelation", mock.Anything, collectionID, collectionID).
		Return(domain.ErrSelfRelation)

	w := f.do(http.MethodPost, "/collections/"+collectionID.String()+"/related", gin.H{"collection_id": collectionID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollectionHandler_ListRelated_Success(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	related := []domain.RelatedCollection{
		{ID: uuid.New(), Name: "Reunion", MemberCount: 4},
	}
	f.relations.On("ListRelated", mock.Anything, collectionID).Return(related, nil)

	w := f.do(http.MethodGet, "/collections/"+collectionID.String()+"/related", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reunion")
}

func TestCollectionHandler_RemoveRelation_Idempotent(t *testing.T) {
	f := setupCollectionHandler()

	collectionID := uuid.New()
	relatedID := uuid.New()
	f.relations.On("RemoveRelation", mock.Anything, collectionID, relatedID).Return(nil).Twice()

	path := "/collections/" + collectionID.String() + "/related/" + relatedID.String()
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, path, nil).Code)
	f.relations.AssertExpectations(t)
}
