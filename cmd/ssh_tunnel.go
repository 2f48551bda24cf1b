package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forum-civic/forum-services/internal/appconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

var tunnelCmd = &cobra.Command{
	Use:   "tunnel",
	Short: "Forward a local port to the database through an SSH bastion",
	Long: `Opens an SSH tunnel described by database.tunnel in the config so that
migrate and serve can be run locally against a private database.`,
	Run: func(cmd *cobra.Command, args []string) {

		setLogging(logLevel)

		cfg, err := appconfig.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := StartSSHTunnel(ctx, cfg.Database.Tunnel); err != nil {
			log.Fatal().Err(err).Msg("SSH tunnel failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(tunnelCmd)
}

// SSHClient dials the bastion with the configured private key.
func SSHClient(cfg appconfig.TunnelConfig) (*ssh.Client, error) {
	if cfg.SSHHost == "" || cfg.SSHUser == "" || cfg.RemoteHost == "" {
		return nil, errors.New("database.tunnel requires sshHost, sshUser and remoteHost")
	}

	key, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHostsPath != "" {
		hostKeyCallback, err = knownhosts.New(cfg.KnownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read known hosts: %w", err)
		}
	} else {
		log.Warn().Msg("knownHostsPath not set, host key will not be verified")
	}

	sshConfig := &ssh.ClientConfig{
		User:            cfg.SSHUser,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         5 * time.Second,
	}

	return ssh.Dial("tcp", net.JoinHostPort(cfg.SSHHost, cfg.SSHPort), sshConfig)
}

// ForwardTraffic forwards every accepted local connection to the remote
// host until the listener is closed.
func ForwardTraffic(localListener net.Listener, client *ssh.Client, cfg appconfig.TunnelConfig) {
	remoteAddr := net.JoinHostPort(cfg.RemoteHost, cfg.RemotePort)
	for {
		localConn, err := localListener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Error().Err(err).Msg("Failed to accept local connection")
			continue
		}

		remoteConn, err := client.Dial("tcp", remoteAddr)
		if err != nil {
			log.Error().Err(err).Str("remote", remoteAddr).Msg("Failed to connect to remote host")
			localConn.Close()
			continue
		}

		go func() {
			defer localConn.Close()
			defer remoteConn.Close()

			go io.Copy(remoteConn, localConn)
			io.Copy(localConn, remoteConn)
		}()
	}
}

// StartSSHTunnel forwards localhost:LocalPort to RemoteHost:RemotePort via
// the bastion until ctx is cancelled.
func StartSSHTunnel(ctx context.Context, cfg appconfig.TunnelConfig) error {
	client, err := SSHClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	localListener, err := net.Listen("tcp", net.JoinHostPort("localhost", cfg.LocalPort))
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		localListener.Close()
	}()

	log.Info().Str("local_port", cfg.LocalPort).Str("remote_host", cfg.RemoteHost).Str("remote_port", cfg.RemotePort).
		Msg("SSH tunnel started")

	ForwardTraffic(localListener, client, cfg)
	return nil
}
