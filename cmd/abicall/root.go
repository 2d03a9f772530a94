package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	abicall "github.com/branched-services/go-abicall"
	"github.com/branched-services/go-abicall/internal/config"
	"github.com/branched-services/go-abicall/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "abicall",
		Short:         "Inspect contract ABIs and describe calls",
		Long:          "abicall builds read and write accessors from a contract ABI and prints the call descriptors they produce.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: abicall.yaml in the working directory)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newMethodsCmd(a),
		newCallCmd(a),
		newFormatCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.Log, a.errOut)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Strings("artifactDirs", cfg.ArtifactDirs))
	return nil
}

// loadContract resolves and loads the artifact named by arg.
func (a *app) loadContract(arg string) (*abicall.Contract, error) {
	path, err := a.cfg.ResolveArtifact(arg)
	if err != nil {
		return nil, err
	}
	contract, err := abicall.LoadArtifactFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("artifact loaded",
		zap.String("path", path),
		zap.String("contract", contract.Name()),
		zap.Int("read", contract.Read().Len()),
		zap.Int("write", contract.Write().Len()))
	return contract, nil
}
