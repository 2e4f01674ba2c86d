package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
	"github.com/pravartak/mentorhub/internal/pkg/auth"
)

func newTestAuthService(mentorRepo *fakeMentorRepo, studentRepo *fakeStudentRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorhub.test",
	})
	return NewAuthService(mentorRepo, studentRepo, jwtService, zerolog.Nop())
}

func validRegisterRequest() *dto.RegisterMentorRequest {
	return &dto.RegisterMentorRequest{
		FullName:  "Asha Verma",
		Email:     "Asha@College.edu",
		Password:  "secret1",
		Expertise: "Data Science",
	}
}

func TestRegisterMentor_Success(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	mentor, err := svc.RegisterMentor(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), mentor.ID)
	assert.Equal(t, "asha@college.edu", mentor.Email)
	assert.Equal(t, "Asha Verma", mentor.FullName)

	stored := mentorRepo.mentors[1]
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret1"))
}

func TestRegisterMentor_MissingFieldsReportedTogether(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	_, err := svc.RegisterMentor(context.Background(), &dto.RegisterMentorRequest{
		Email: "a@b.c",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Missing fields: full_name, password, expertise", err.Error())
}

func TestRegisterMentor_FormatChecks(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterMentorRequest)
		message string
	}{
		{"bad email", func(r *dto.RegisterMentorRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"no dot after at", func(r *dto.RegisterMentorRequest) { r.Email = "a@nodot" }, "Invalid email format"},
		{"short password", func(r *dto.RegisterMentorRequest) { r.Password = "12345" }, "Password must be at least 6 characters long"},
		{"short name", func(r *dto.RegisterMentorRequest) { r.FullName = " A " }, "Full name must be at least 2 characters long"},
		{"short expertise", func(r *dto.RegisterMentorRequest) { r.Expertise = "X" }, "Expertise must be at least 2 characters long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(req)
			_, err := svc.RegisterMentor(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestRegisterMentor_DuplicateEmail(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	_, err := svc.RegisterMentor(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// Duplicate detection is case-insensitive: both spellings normalize to
	// the same stored address
	req := validRegisterRequest()
	req.Email = "ASHA@COLLEGE.EDU"
	_, err = svc.RegisterMentor(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrMentorEmailAlreadyExists)
}

func TestLogin_MentorSuccess(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	mentorRepo.add(&models.Mentor{FullName: "Asha Verma", Email: "asha@college.edu", Password: hash, Expertise: "Data Science"})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: " Asha@College.EDU ", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, RoleMentor, login.User.Role)
	assert.Equal(t, "Data Science", login.User.Expertise)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, 3600, login.ExpiresIn)
}

func TestLogin_StudentSuccess(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	studentRepo := newFakeStudentRepo(mentorRepo)
	svc := newTestAuthService(mentorRepo, studentRepo)

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	studentRepo.add(&models.Student{FullName: "Ravi Kumar", Email: "ravi@college.edu", Password: hash})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ravi@college.edu", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, RoleStudent, login.User.Role)
	assert.Empty(t, login.User.Expertise)
}

func TestLogin_MentorTakesPrecedenceOverStudent(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	studentRepo := newFakeStudentRepo(mentorRepo)
	svc := newTestAuthService(mentorRepo, studentRepo)

	hash, err := auth.HashPassword("shared-pass")
	require.NoError(t, err)
	mentorRepo.add(&models.Mentor{FullName: "Shared", Email: "shared@college.edu", Password: hash})
	studentRepo.add(&models.Student{FullName: "Shared", Email: "shared@college.edu", Password: hash})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "shared@college.edu", Password: "shared-pass"})
	require.NoError(t, err)
	assert.Equal(t, RoleMentor, login.User.Role)
}

func TestLogin_WrongPasswordIsUniform(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	mentorRepo.add(&models.Mentor{Email: "asha@college.edu", Password: hash})

	// Wrong password and unknown email must be indistinguishable
	_, errWrong := svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@college.edu", Password: "nope"})
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@college.edu", Password: "nope"})

	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestLogin_StudentWithEmptyHashRejected(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	studentRepo := newFakeStudentRepo(mentorRepo)
	svc := newTestAuthService(mentorRepo, studentRepo)

	studentRepo.add(&models.Student{Email: "legacy@college.edu", Password: ""})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "legacy@college.edu", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "legacy@college.edu", Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_MissingCredentials(t *testing.T) {
	mentorRepo := newFakeMentorRepo()
	svc := newTestAuthService(mentorRepo, newFakeStudentRepo(mentorRepo))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "", Password: "x"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Email and password required", err.Error())
}
