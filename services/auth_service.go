package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/store"
	"backend/utils"
)

type AuthService struct {
	st store.Store
}

func NewAuthService(st store.Store) *AuthService {
	return &AuthService{st: st}
}

type Session struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

func (s *AuthService) Register(email, password, firstName, lastName string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("Email y contraseña son obligatorios")
	}
	if _, err := s.st.Users().ByEmail(email); err == nil {
		return nil, errors.New("El email ya está registrado")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleParticipant,
		NotificationPrefs: models.NotificationPreferences{
			DailyMoments:  true,
			Habits:        true,
			Challenges:    true,
			CoachMessages: true,
		},
	}
	if err := s.st.Users().Create(user); err != nil {
		return nil, err
	}

	// cohort membership starts at signup
	_ = s.st.Cohort().Create(&models.CohortMember{UserID: user.ID})

	return user, nil
}

func (s *AuthService) Login(email, password string) (*Session, error) {
	user, err := s.st.Users().ByEmail(email)
	if err != nil || user.Disabled {
		return nil, errors.New("Usuario no encontrado o deshabilitado")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("Contraseña incorrecta")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, UserID: user.ID, Role: user.Role}, nil
}

// ForgotPassword stores a short-lived reset code on the user. The caller
// decides whether to reveal lookup failures.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	user, err := s.st.Users().ByEmail(email)
	if err != nil {
		return "", errors.New("Usuario no encontrado")
	}

	code := utils.GenerateResetCode(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.st.Users().Save(user); err != nil {
		return "", err
	}
	return code, nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.st.Users().ByResetToken(token)
	if err != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("Código inválido o expirado")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	return s.st.Users().Save(user)
}
