package main

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/logger"
	"github.com/sealkit/sealkit/pkg/secrets"
	"github.com/sealkit/sealkit/pkg/secretstore"
	"github.com/sealkit/sealkit/pkg/signer"
)

var (
	keyFlag     string
	awsSecretID string
	saltFlag    string
	sepFlag     string
	useSHA1     bool
	verbose     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "sealkit: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sealkit",
		Short: "Sign and validate compact self-contained tokens",
		Long: `sealkit signs arbitrary string values into compact, URL-safe tokens that embed
the value, a creation timestamp, and a keyed integrity signature, and validates
such tokens against tampering and expiry.

The signing key is resolved from --key, then the SEALKIT_SECRET_KEY environment
variable, then AWS Secrets Manager via --aws-secret-id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger.SetAsDefault(logger.New(
				logger.WithLevel(level),
				logger.WithAttr(slog.String("app", "sealkit")),
			))
		},
	}
	cmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "", "Secret key (falls back to SEALKIT_SECRET_KEY, then AWS)")
	cmd.PersistentFlags().StringVar(&awsSecretID, "aws-secret-id", "", "AWS Secrets Manager secret id or ARN holding the key")
	cmd.PersistentFlags().StringVar(&saltFlag, "salt", "", "Signer salt distinguishing token purposes")
	cmd.PersistentFlags().StringVar(&sepFlag, "sep", ".", "Token part separator")
	cmd.PersistentFlags().BoolVar(&useSHA1, "sha1", false, "Use SHA-1 digests for interop with legacy tokens")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.AddCommand(
		newSignCmd(),
		newVerifyCmd(),
		newSecretCmd(),
	)
	return cmd
}

func newSignCmd() *cobra.Command {
	var timestamp int64
	cmd := &cobra.Command{
		Use:   "sign VALUE",
		Short: "Sign a value into a compact URL-safe token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSigner(cmd.Context())
			if err != nil {
				return err
			}

			var token string
			if timestamp > 0 {
				token = s.SignAt(args[0], time.Unix(timestamp, 0))
			} else {
				token = s.Sign(args[0])
			}
			slog.Debug("token issued", logger.TokenLength(token))
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Unix timestamp to embed instead of the current time")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var maxAge time.Duration
	cmd := &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Validate a token and print the originally signed value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSigner(cmd.Context())
			if err != nil {
				return err
			}

			value, err := s.Validate(args[0], signer.WithMaxAge(maxAge))
			if err != nil {
				var bad *signer.BadTokenError
				if errors.As(err, &bad) {
					slog.Debug("token rejected", logger.Error(bad.Reason), logger.TokenLength(bad.Token))
				}
				return err
			}

			color.New(color.FgGreen).Fprintln(os.Stderr, "token ok")
			fmt.Println(value)
			return nil
		},
	}
	cmd.Flags().DurationVar(&maxAge, "max-age", 0, "Maximum token age, e.g. 15m (0 disables the expiry check)")
	return cmd
}

func newSecretCmd() *cobra.Command {
	var nBytes int
	var urlSafe bool
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Generate random secret material for signing keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			var err error
			if urlSafe {
				out, err = secrets.GenerateToken(nBytes)
			} else {
				out, err = secrets.GenerateSecret(nBytes)
			}
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&nBytes, "bytes", "n", 0, "Bytes of entropy (defaults: 32 hex, 16 url-safe)")
	cmd.Flags().BoolVar(&urlSafe, "url-safe", false, "Emit a padding-free base64url token instead of hex")
	return cmd
}

// newSigner builds a Signer from flags and environment configuration.
func newSigner(ctx context.Context) (*signer.Signer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	key, err := resolveKey(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := []signer.Option{signer.WithSeparator(sepFlag)}
	salt := saltFlag
	if salt == "" {
		salt = cfg.Salt
	}
	if salt != "" {
		opts = append(opts, signer.WithSalt(salt))
	}
	if useSHA1 {
		opts = append(opts, signer.WithAlgorithm(sha1.New))
	}
	return signer.New(key, opts...)
}

// resolveKey resolves the signing key: --key flag, then environment, then
// AWS Secrets Manager.
func resolveKey(ctx context.Context, cfg Config) (string, error) {
	if keyFlag != "" {
		return keyFlag, nil
	}
	if cfg.SecretKey != "" {
		slog.Debug("using signing key from environment")
		return cfg.SecretKey, nil
	}

	secretID := awsSecretID
	if secretID == "" {
		secretID = cfg.AWSSecretID
	}
	if secretID == "" {
		return "", errors.New("no signing key: set --key, SEALKIT_SECRET_KEY, or --aws-secret-id")
	}

	store, err := secretstore.NewSecretsManagerStore(ctx, secretstore.Config{Region: cfg.AWSRegion})
	if err != nil {
		return "", err
	}
	slog.Debug("fetching signing key",
		logger.Component("secretstore"), slog.String("secret_id", secretID))
	return store.GetSecret(ctx, secretID)
}
