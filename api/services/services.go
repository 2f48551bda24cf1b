package services

import (
	"context"

	"github.com/forum-civic/forum-services/internal/appconfig"
	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/forum-civic/forum-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ForumStore is the persistence layer for users, friend lists and posts.
type ForumStore interface {
	CreateUser(user models.UserInfo) error
	GetUser(uid string) (*models.UserInfo, error)
	GetUsers(uids []string) ([]models.UserInfo, error)
	UpdateUserName(uid, firstName, lastName string) (*models.UserInfo, error)
	SetProfilePicture(uid, key string) error

	InitFriends(uid string) error
	AddFriend(uid, friendUID string) error
	GetFriendIDs(uid string) ([]string, error)

	CreatePost(post *models.Post) (*models.Post, error)
	GetPost(postID uuid.UUID) (*models.Post, error)
	ListPostsByScope(scope geo.Scope, place geo.Place) ([]models.Post, error)
	ListPostsByUser(uid string) ([]models.Post, error)
	ListPostsByUsers(uids []string) ([]models.Post, error)
	DeletePost(postID uuid.UUID) error
}

// IdentityProvider manages accounts and sessions.
type IdentityProvider interface {
	CreateUser(email, password, firstName, lastName string) (string, error)
	GetUserByEmail(email string) (*KeycloakUser, error)
	DeleteUser(userID string) error
	Login(email, password string) (*TokenResponse, error)
	Refresh(refreshToken string) (*TokenResponse, error)
	Logout(refreshToken string) error
	SendResetPassword(userID string) error
}

type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, data []byte) error
}

type LegislationAPI interface {
	GetBills(ctx context.Context) (*models.BillResponse, error)
	GetCommittees(ctx context.Context, chamber string) (*models.CommitteeResponse, error)
}

type RepresentativesAPI interface {
	GetRepresentatives(ctx context.Context, address string) (*models.CivicInfo, error)
}

type FinanceAPI interface {
	GetPACs(ctx context.Context, page int) (*models.PACResponse, error)
	GetDisbursements(ctx context.Context, committeeID string, cursor *models.DisbursementCursor) (*models.DisbursementResponse, error)
}

// Service contains all shared dependencies for handlers. Mailer and Objects
// are optional.
type Service struct {
	Config    *appconfig.Config
	DB        ForumStore
	Publisher events.Notifier
	KC        IdentityProvider
	Names     *NameResolver
	Mailer    Mailer
	Objects   ObjectStore
	Congress  LegislationAPI
	Civic     RepresentativesAPI
	FEC       FinanceAPI
}

// NewService wires a Service and its name resolver around db.
func NewService(cfg *appconfig.Config, db ForumStore, publisher events.Notifier, kc IdentityProvider) *Service {
	if publisher == nil {
		publisher = events.NopNotifier{}
	}
	return &Service{
		Config:    cfg,
		DB:        db,
		Publisher: publisher,
		KC:        kc,
		Names:     NewNameResolver(NewNameCache(), db),
	}
}

func (svc *Service) neighborhoodRadius() float64 {
	if svc.Config != nil && svc.Config.Posts.NeighborhoodRadiusMiles > 0 {
		return svc.Config.Posts.NeighborhoodRadiusMiles
	}
	return geo.DefaultNeighborhoodMiles
}

// publish sends an event, logging rather than failing on error.
func (svc *Service) publish(ctx context.Context, event events.Event) {
	if svc.Publisher == nil {
		return
	}
	if err := svc.Publisher.Publish(event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("type", event.Type).Msg("Failed to publish event")
	}
}
