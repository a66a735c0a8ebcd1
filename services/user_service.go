package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/store"
	"backend/utils"
)

type UserService struct {
	st store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{st: st}
}

type ProfileInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Birthday       string `json:"birthday"` // YYYY-MM-DD
	Gender         string `json:"gender"`
	ProfilePicture string `json:"profile_picture"` // base64 data URL
}

// NotificationPrefsInput merges field-wise; nil pointers leave the stored
// value untouched.
type NotificationPrefsInput struct {
	DailyMoments  *bool `json:"daily_moments"`
	Habits        *bool `json:"habits"`
	Challenges    *bool `json:"challenges"`
	CoachMessages *bool `json:"coach_messages"`
}

type ConsentInput struct {
	PrivacyConsent   *bool `json:"privacy_consent"`
	MarketingConsent *bool `json:"marketing_consent"`
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	user, err := s.st.Users().ByID(userID)
	if err != nil || user.Disabled {
		return nil, errors.New("Usuario no encontrado o deshabilitado")
	}

	birthday := ""
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format("2006-01-02")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"phone":           user.Phone,
		"birthday":        birthday,
		"gender":          user.Gender,
		"role":            user.Role,
		"profile_picture": user.ProfilePicture,
		"day0_completed":  user.Day0Completed,
		"day21_completed": user.Day21Completed,
		"notification_preferences": map[string]bool{
			"daily_moments":  user.NotificationPrefs.DailyMoments,
			"habits":         user.NotificationPrefs.Habits,
			"challenges":     user.NotificationPrefs.Challenges,
			"coach_messages": user.NotificationPrefs.CoachMessages,
		},
		"privacy_consent":    user.PrivacyConsent,
		"marketing_consent":  user.MarketingConsent,
		"deletion_requested": user.DeletionRequested,
	}, nil
}

// UpdateProfile applies a partial update: only fields present in the input
// overwrite stored values.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	user, err := s.st.Users().ByID(userID)
	if err != nil || user.Disabled {
		return errors.New("Usuario no encontrado o deshabilitado")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Email)
		if err != nil {
			return err
		}
		user.ProfilePicture = url
	}

	return s.st.Users().Save(user)
}

func (s *UserService) UpdateNotificationPreferences(userID uint, input NotificationPrefsInput) error {
	user, err := s.st.Users().ByID(userID)
	if err != nil {
		return errors.New("Usuario no encontrado")
	}

	if input.DailyMoments != nil {
		user.NotificationPrefs.DailyMoments = *input.DailyMoments
	}
	if input.Habits != nil {
		user.NotificationPrefs.Habits = *input.Habits
	}
	if input.Challenges != nil {
		user.NotificationPrefs.Challenges = *input.Challenges
	}
	if input.CoachMessages != nil {
		user.NotificationPrefs.CoachMessages = *input.CoachMessages
	}

	return s.st.Users().Save(user)
}

func (s *UserService) UpdateConsent(userID uint, input ConsentInput) error {
	user, err := s.st.Users().ByID(userID)
	if err != nil {
		return errors.New("Usuario no encontrado")
	}
	if input.PrivacyConsent != nil {
		user.PrivacyConsent = *input.PrivacyConsent
	}
	if input.MarketingConsent != nil {
		user.MarketingConsent = *input.MarketingConsent
	}
	return s.st.Users().Save(user)
}

// RequestDeletion records the request; accounts are never hard-deleted.
func (s *UserService) RequestDeletion(userID uint) error {
	user, err := s.st.Users().ByID(userID)
	if err != nil {
		return errors.New("Usuario no encontrado")
	}
	if user.DeletionRequested {
		return nil
	}
	now := time.Now()
	user.DeletionRequested = true
	user.DeletionRequestedAt = &now
	return s.st.Users().Save(user)
}

// MarkPhaseCompleted flips the day-0 / day-21 flag on the user and keeps the
// cohort membership in sync.
func (s *UserService) MarkPhaseCompleted(userID uint, phase string) error {
	user, err := s.st.Users().ByID(userID)
	if err != nil {
		return errors.New("Usuario no encontrado")
	}

	switch phase {
	case models.PhaseInicio:
		user.Day0Completed = true
	case models.PhaseFin:
		user.Day21Completed = true
	default:
		return errors.New("Fase inválida")
	}
	if err := s.st.Users().Save(user); err != nil {
		return err
	}

	member, err := s.st.Cohort().ByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		member = &models.CohortMember{UserID: userID}
		if err := s.st.Cohort().Create(member); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	member.Day0Completed = user.Day0Completed
	member.Day21Completed = user.Day21Completed
	return s.st.Cohort().Save(member)
}
