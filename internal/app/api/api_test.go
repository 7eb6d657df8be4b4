package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

// MockDoer is a mock implementation of the Doer interface
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(ctx context.Context, req apiclient.Request, out any) error {
	args := m.Called(ctx, req)
	if data := args.Get(0); data != nil && out != nil {
		raw, _ := json.Marshal(data)
		_ = json.Unmarshal(raw, out)
	}
	return args.Error(1)
}

func request(method, path string, query, body any) apiclient.Request {
	return apiclient.Request{Method: method, Path: path, Query: query, Body: body}
}

func TestAuthEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		form := models.LoginForm{Username: "u", Password: "p"}
		doer.On("Do", ctx, request(http.MethodPost, "/auth/login", nil, form)).
			Return(models.LoginResult{Token: "abc", UserID: 1, Username: "u", Nickname: "n", Role: "USER"}, nil).Once()

		res, err := a.Login(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, "abc", res.Token)
		assert.Equal(t, int64(1), res.UserID)
		doer.AssertExpectations(t)
	})

	t.Run("Login validates before dispatch", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)

		_, err := a.Login(ctx, models.LoginForm{Username: "u"})
		assert.ErrorIs(t, err, models.ErrValidation)
		doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})

	t.Run("Login propagates failures", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		form := models.LoginForm{Username: "u", Password: "bad"}
		doer.On("Do", ctx, mock.Anything).Return(nil, &apiclient.Error{Code: 500, Message: "wrong password"}).Once()

		res, err := a.Login(ctx, form)
		assert.Nil(t, res)
		assert.EqualError(t, err, "wrong password")
	})

	t.Run("GetUserInfo", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		doer.On("Do", ctx, request(http.MethodGet, "/auth/info", nil, nil)).
			Return(models.User{ID: 1, Username: "u", Role: models.RoleAdmin}, nil).Once()

		u, err := a.GetUserInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
	})

	t.Run("Logout Register UpdatePassword", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		reg := models.RegisterForm{Username: "merchant", Password: "secret1", Nickname: "m"}
		pw := models.PasswordForm{OldPassword: "secret1", NewPassword: "secret2"}
		doer.On("Do", ctx, request(http.MethodPost, "/auth/logout", nil, nil)).Return(nil, nil).Once()
		doer.On("Do", ctx, request(http.MethodPost, "/auth/register", nil, reg)).Return(nil, nil).Once()
		doer.On("Do", ctx, request(http.MethodPut, "/auth/password", nil, pw)).Return(nil, nil).Once()

		assert.NoError(t, a.Logout(ctx))
		assert.NoError(t, a.Register(ctx, reg))
		assert.NoError(t, a.UpdatePassword(ctx, pw))
		assert.ErrorIs(t, a.UpdatePassword(ctx, models.PasswordForm{OldPassword: "same12", NewPassword: "same12"}), models.ErrValidation)
		doer.AssertExpectations(t)
	})
}

func TestResourceEndpoints(t *testing.T) {
	ctx := context.Background()
	doer := new(MockDoer)
	a := New(doer)

	status := map[string]any{"status": 1}
	cases := []struct {
		name string
		req  apiclient.Request
		call func() error
	}{
		{"UpdateProfile", request(http.MethodPut, "/user/profile", nil, models.ProfileForm{Nickname: "n"}),
			func() error { return a.UpdateProfile(ctx, models.ProfileForm{Nickname: "n"}) }},
		{"UpdateUser", request(http.MethodPut, "/user/admin/3", nil, models.ProfileForm{Role: models.RoleAdmin}),
			func() error { return a.UpdateUser(ctx, 3, models.ProfileForm{Role: models.RoleAdmin}) }},
		{"UpdateUserStatus", request(http.MethodPut, "/user/admin/3/status", map[string]any{"status": 0}, nil),
			func() error { return a.UpdateUserStatus(ctx, 3, 0) }},
		{"ResetPassword", request(http.MethodPut, "/user/admin/3/reset-password", nil, nil),
			func() error { return a.ResetPassword(ctx, 3) }},
		{"DeleteUser", request(http.MethodDelete, "/user/admin/3", nil, nil),
			func() error { return a.DeleteUser(ctx, 3) }},
		{"UpdateStallStatus", request(http.MethodPut, "/stall/admin/5/status", map[string]any{"status": 2}, nil),
			func() error { return a.UpdateStallStatus(ctx, 5, 2) }},
		{"DeleteStall", request(http.MethodDelete, "/stall/admin/5", nil, nil),
			func() error { return a.DeleteStall(ctx, 5) }},
		{"DeleteStallType", request(http.MethodDelete, "/stall-type/admin/2", nil, nil),
			func() error { return a.DeleteStallType(ctx, 2) }},
		{"CancelApplication", request(http.MethodDelete, "/application/9", nil, nil),
			func() error { return a.CancelApplication(ctx, 9) }},
		{"ApproveApplication", request(http.MethodPut, "/application/admin/9/review", nil, models.ReviewForm{Status: 1}),
			func() error { return a.ApproveApplication(ctx, 9) }},
		{"RejectApplication", request(http.MethodPut, "/application/admin/9/review", nil, models.ReviewForm{Status: 2, ReviewOpinion: "incomplete"}),
			func() error { return a.RejectApplication(ctx, 9, "incomplete") }},
		{"UpdatePaymentStatus", request(http.MethodPut, "/rental/admin/4/payment", map[string]any{"paymentStatus": 1}, nil),
			func() error { return a.UpdatePaymentStatus(ctx, 4, 1) }},
		{"TerminateRental", request(http.MethodPut, "/rental/admin/4/terminate", nil, nil),
			func() error { return a.TerminateRental(ctx, 4) }},
		{"UpdateRectificationStatus", request(http.MethodPut, "/hygiene/admin/6/rectification", status, nil),
			func() error { return a.UpdateRectificationStatus(ctx, 6, 1) }},
		{"DeleteHygiene", request(http.MethodDelete, "/hygiene/admin/6", nil, nil),
			func() error { return a.DeleteHygiene(ctx, 6) }},
		{"ReplyFeedback", request(http.MethodPut, "/feedback/admin/8/reply", nil, map[string]string{"reply": "fixed"}),
			func() error { return a.ReplyFeedback(ctx, 8, "fixed") }},
		{"UpdateFeedbackStatus", request(http.MethodPut, "/feedback/admin/8/status", map[string]any{"status": 2}, nil),
			func() error { return a.UpdateFeedbackStatus(ctx, 8, 2) }},
		{"PublishAnnouncement", request(http.MethodPut, "/announcement/admin/1/status", status, nil),
			func() error { return a.PublishAnnouncement(ctx, 1) }},
		{"UnpublishAnnouncement", request(http.MethodPut, "/announcement/admin/1/status", map[string]any{"status": 2}, nil),
			func() error { return a.UnpublishAnnouncement(ctx, 1) }},
		{"DeleteAnnouncement", request(http.MethodDelete, "/announcement/admin/1", nil, nil),
			func() error { return a.DeleteAnnouncement(ctx, 1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doer.On("Do", ctx, tc.req).Return(nil, nil).Once()
			assert.NoError(t, tc.call())
		})
	}
	doer.AssertExpectations(t)
}

func TestListEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("GetStallList", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		q := models.StallQuery{Keyword: models.String("tea")}
		doer.On("Do", ctx, request(http.MethodGet, "/stall/list", q, nil)).Return(models.PageResult[models.Stall]{
			Records: []models.Stall{{ID: 1, StallNo: "A-01", Name: "Tea"}},
			Total:   1, Pages: 1, Size: 10, Current: 1,
		}, nil).Once()

		page, err := a.GetStallList(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, "A-01", page.Records[0].StallNo)
	})

	t.Run("GetPublishedAnnouncements", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		doer.On("Do", ctx, request(http.MethodGet, "/announcement/list", map[string]any{"type": 2}, nil)).
			Return([]models.Announcement{{ID: 1, Title: "Night market"}}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/announcement/list", map[string]any{}, nil)).
			Return([]models.Announcement{}, nil).Once()

		list, err := a.GetPublishedAnnouncements(ctx, models.Int(2))
		require.NoError(t, err)
		assert.Len(t, list, 1)

		list, err = a.GetPublishedAnnouncements(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("GetStallTypeList alias", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		doer.On("Do", ctx, request(http.MethodGet, "/stall-type/list", nil, nil)).
			Return([]models.StallType{{ID: 1, Name: "Food"}}, nil).Twice()

		l1, err := a.GetStallTypeList(ctx)
		require.NoError(t, err)
		l2, err := a.GetAllStallTypes(ctx)
		require.NoError(t, err)
		assert.Equal(t, l1, l2)
	})

	t.Run("detail endpoints", func(t *testing.T) {
		doer := new(MockDoer)
		a := New(doer)
		doer.On("Do", ctx, request(http.MethodGet, "/stall/2", nil, nil)).Return(models.Stall{ID: 2}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/application/3", nil, nil)).Return(models.Application{ID: 3}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/rental/4", nil, nil)).Return(models.Rental{ID: 4}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/hygiene/5", nil, nil)).Return(models.Hygiene{ID: 5}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/feedback/6", nil, nil)).Return(models.Feedback{ID: 6}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/announcement/7", nil, nil)).Return(models.Announcement{ID: 7}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/user/admin/8", nil, nil)).Return(models.User{ID: 8}, nil).Once()
		doer.On("Do", ctx, request(http.MethodGet, "/stall-type/9", nil, nil)).Return(models.StallType{ID: 9}, nil).Once()

		s, err := a.GetStallByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), s.ID)
		app, err := a.GetApplicationByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), app.ID)
		r, err := a.GetRentalByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(4), r.ID)
		h, err := a.GetHygieneByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), h.ID)
		f, err := a.GetFeedbackByID(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, int64(6), f.ID)
		an, err := a.GetAnnouncementByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), an.ID)
		u, err := a.GetUserByID(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), u.ID)
		st, err := a.GetStallTypeByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(9), st.ID)
		doer.AssertExpectations(t)
	})
}

func TestCreateEndpointsValidate(t *testing.T) {
	ctx := context.Background()
	doer := new(MockDoer)
	a := New(doer)

	assert.ErrorIs(t, a.CreateStall(ctx, models.StallForm{Name: "no number"}), models.ErrValidation)
	assert.ErrorIs(t, a.CreateStallType(ctx, models.StallTypeForm{}), models.ErrValidation)
	assert.ErrorIs(t, a.CreateApplication(ctx, models.ApplicationForm{StallID: 1, StartDate: "tomorrow"}), models.ErrValidation)
	assert.ErrorIs(t, a.CreateHygiene(ctx, models.HygieneForm{StallID: 1, InspectionDate: "2024-01-01", Score: 101}), models.ErrValidation)
	assert.ErrorIs(t, a.CreateFeedback(ctx, models.FeedbackForm{Type: 1}), models.ErrValidation)
	assert.ErrorIs(t, a.CreateAnnouncement(ctx, models.AnnouncementForm{Title: "t"}), models.ErrValidation)
	assert.ErrorIs(t, a.ReviewApplication(ctx, 1, models.ReviewForm{Status: 3}), models.ErrValidation)
	doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)

	app := models.ApplicationForm{StallID: 1, StartDate: "2025-01-01", EndDate: "2025-06-30", BusinessType: "snacks"}
	doer.On("Do", ctx, request(http.MethodPost, "/application/submit", nil, app)).Return(nil, nil).Once()
	assert.NoError(t, a.CreateApplication(ctx, app))
	doer.AssertExpectations(t)
}
