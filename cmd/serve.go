package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/forum-civic/forum-services/api/handlers"
	"github.com/forum-civic/forum-services/api/middleware"
	"github.com/forum-civic/forum-services/api/services"
	docs "github.com/forum-civic/forum-services/docs"
	"github.com/forum-civic/forum-services/internal/appconfig"
	awsclient "github.com/forum-civic/forum-services/internal/aws"
	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/internal/govdata"
	"github.com/forum-civic/forum-services/internal/tracing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer forumDB.Close()

		ctx := context.Background()

		tp, err := tracing.NewOTLPProvider(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracing")
		}
		defer tp.Shutdown(ctx)

		publisher := initializePublisher(appCfg.Pulsar)
		defer publisher.Close()

		keycloakClient := initializeKeycloakClient(appCfg.Keycloak)

		service := services.NewService(appCfg, forumDB, publisher, keycloakClient)
		initializeAWS(ctx, appCfg, service)
		service.Congress = govdata.NewCongressClient(appCfg.APIs.Congress.URL, appCfg.APIs.Congress.Key)
		service.Civic = govdata.NewCivicInfoClient(appCfg.APIs.CivicInfo.URL, appCfg.APIs.CivicInfo.Key)
		service.FEC = govdata.NewFECClient(appCfg.APIs.FEC.URL, appCfg.APIs.FEC.Key, appCfg.APIs.FEC.Cycle)

		stopConsumer := startConsumer(ctx, service.Names.Cache)
		defer stopConsumer()

		r := newRouter(appCfg, service)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

func newRouter(cfg *appconfig.Config, service *services.Service) *mux.Router {
	r := mux.NewRouter()

	// Public auth routes. These get their own prefix so that a miss here
	// falls through cleanly to the authenticated subrouter.
	auth := r.PathPrefix(path.Join(cfg.BasePath, "/auth")).Subrouter()
	auth.Use(middleware.WithLogger)

	auth.HandleFunc("/signup", handlers.SignUp(service)).Methods(http.MethodPost)
	auth.HandleFunc("/login", handlers.Login(service)).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", handlers.Refresh(service)).Methods(http.MethodPost)
	auth.HandleFunc("/logout", handlers.Logout(service)).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset", handlers.PasswordReset(service)).Methods(http.MethodPost)

	// Docs
	docs.SwaggerInfo.Host = cfg.Host
	docs.SwaggerInfo.BasePath = cfg.BasePath
	if cfg.DocsPath != "" {
		r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)
	}

	api := r.PathPrefix(cfg.BasePath).Subrouter()

	// Apply the middleware to the API routes
	api.Use(middleware.WithLogger)
	api.Use(middleware.JWTMiddleware)

	// Post routes
	api.HandleFunc("/posts", handlers.CreatePost(service)).Methods(http.MethodPost)
	api.HandleFunc("/posts", handlers.GetPosts(service)).Methods(http.MethodGet)
	api.HandleFunc("/posts/friends", handlers.GetFriendsPosts(service)).Methods(http.MethodGet)
	api.HandleFunc("/posts/{post-id}", handlers.GetPost(service)).Methods(http.MethodGet)
	api.HandleFunc("/posts/{post-id}", handlers.DeletePost(service)).Methods(http.MethodDelete)

	// User routes
	api.HandleFunc("/users/{user-id}", handlers.GetUser(service)).Methods(http.MethodGet)
	api.HandleFunc("/users/{user-id}", handlers.UpdateUser(service)).Methods(http.MethodPut)
	api.HandleFunc("/users/{user-id}/posts", handlers.GetUserPosts(service)).Methods(http.MethodGet)
	api.HandleFunc("/users/{user-id}/profile-picture", handlers.UploadProfilePicture(service)).Methods(http.MethodPut)

	// Friend routes
	api.HandleFunc("/friends", handlers.GetFriends(service)).Methods(http.MethodGet)
	api.HandleFunc("/friends/ids", handlers.GetFriendIDs(service)).Methods(http.MethodGet)
	api.HandleFunc("/friends/{friend-id}", handlers.AddFriend(service)).Methods(http.MethodPut)

	// Civic and finance routes
	api.HandleFunc("/civic/bills", handlers.GetBills(service)).Methods(http.MethodGet)
	api.HandleFunc("/civic/committees", handlers.GetCommittees(service)).Methods(http.MethodGet)
	api.HandleFunc("/civic/representatives", handlers.GetRepresentatives(service)).Methods(http.MethodGet)
	api.HandleFunc("/finance/pacs", handlers.GetPACs(service)).Methods(http.MethodGet)
	api.HandleFunc("/finance/pacs/{committee-id}/disbursements", handlers.GetDisbursements(service)).Methods(http.MethodGet)

	return r
}

// initializePublisher connects to Pulsar, or returns a no-op notifier when
// no broker is configured.
func initializePublisher(cfg appconfig.PulsarConfig) events.Notifier {
	if cfg.URL == "" || cfg.TopicProducer == "" {
		log.Info().Msg("Pulsar not configured, events will not be published")
		return events.NopNotifier{}
	}

	publisher, err := events.NewEventPublisher(cfg.URL, cfg.TopicProducer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize event publisher")
	}
	return publisher
}

// initializeKeycloakClient creates the Keycloak client and checks that the
// service account credentials work.
func initializeKeycloakClient(kcCfg appconfig.KeycloakConfig) *services.KeycloakClient {
	keycloakClientSecret := os.Getenv("KEYCLOAK_CLIENT_SECRET")

	keycloakClient := services.NewKeycloakClient(kcCfg.URL, kcCfg.ClientId, keycloakClientSecret, kcCfg.Realm)
	if err := keycloakClient.GetToken(); err != nil {
		log.Warn().Err(err).Msg("Failed to obtain Keycloak service token, admin operations will retry on demand")
	}

	return keycloakClient
}

// initializeAWS loads API keys from Secrets Manager and sets up the mailer
// and profile picture store. Each piece is skipped when not configured.
func initializeAWS(ctx context.Context, cfg *appconfig.Config, service *services.Service) {
	if cfg.AWS.Region == "" {
		log.Info().Msg("AWS region not configured, skipping Secrets Manager, SES and S3")
		return
	}

	awsCfg, err := awsclient.LoadAWSConfig(ctx, cfg.AWS.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	if cfg.AWS.SecretName != "" {
		keys, err := awsclient.LoadAPIKeys(ctx, awsclient.NewSecretsManagerClient(awsCfg), cfg.AWS.SecretName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load API keys")
		}
		applyAPIKeys(&cfg.APIs, keys)
	}

	if cfg.Accounts.SenderEmail != "" {
		service.Mailer = &awsclient.SESMailer{Client: awsclient.NewSESClient(awsCfg), Sender: cfg.Accounts.SenderEmail}
	}

	if cfg.AWS.S3.Bucket != "" {
		service.Objects = &awsclient.S3ObjectStore{Client: awsclient.NewS3Client(awsCfg), Bucket: cfg.AWS.S3.Bucket}
	}
}

// applyAPIKeys overrides configured API keys with the non-empty secret values.
func applyAPIKeys(apis *appconfig.APIsConfig, keys *awsclient.APIKeys) {
	if keys.Congress != "" {
		apis.Congress.Key = keys.Congress
	}
	if keys.CivicInfo != "" {
		apis.CivicInfo.Key = keys.CivicInfo
	}
	if keys.FEC != "" {
		apis.FEC.Key = keys.FEC
	}
}
