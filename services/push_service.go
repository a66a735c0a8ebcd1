package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"backend/models"
	"backend/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

type PushService struct {
	st              store.Store
	sns             *awssns.Client
	fcmPlatformArn  string
	apnsPlatformArn string
}

func NewPushService(st store.Store) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		st:              st,
		sns:             awssns.NewFromConfig(cfg),
		fcmPlatformArn:  os.Getenv("SNS_FCM_ARN"),
		apnsPlatformArn: os.Getenv("SNS_APNS_ARN"),
	}, nil
}

func (p *PushService) tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

// RegisterDevice creates (or refreshes) the SNS endpoint for a device token.
func (p *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	hash := p.tokenHash(token)
	if existing, err := p.st.Devices().ByUserAndTokenHash(userID, hash); err == nil {
		existing.EndpointARN = aws.ToString(out.EndpointArn)
		existing.Platform = strings.ToLower(platform)
		if err := p.st.Devices().Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	dev := &models.UserDevice{
		UserID:      userID,
		Platform:    strings.ToLower(platform),
		TokenHash:   hash,
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		UpdatedAt:   time.Now(),
	}
	if err := p.st.Devices().Create(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

func (p *PushService) SetEnabled(userID uint, enabled bool) error {
	return p.st.Devices().SetEnabledForUser(userID, enabled)
}

// BroadcastNotification fans a coach broadcast out to every enabled device.
// Delivery is best effort; per-endpoint failures are logged and skipped.
func (p *PushService) BroadcastNotification(n *models.Notification) {
	devices, err := p.st.Devices().AllEnabled()
	if err != nil {
		log.Printf("push: device lookup failed: %v", err)
		return
	}
	if len(devices) == 0 {
		return
	}

	msg := map[string]any{
		"default": n.Message,
		"GCM": map[string]any{
			"notification": map[string]string{
				"title": n.Title,
				"body":  n.Message,
			},
			"data": map[string]string{
				"category": n.Category,
			},
		},
	}
	raw, _ := json.Marshal(msg)

	for _, d := range devices {
		_, err := p.sns.Publish(context.TODO(), &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
		if err != nil {
			log.Printf("push: publish to %s failed: %v", d.EndpointARN, err)
		}
	}
}
