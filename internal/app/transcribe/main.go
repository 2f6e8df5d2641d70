package transcribe

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/airenas/groq-transcriber/internal/pkg/audio"
	"github.com/airenas/groq-transcriber/internal/pkg/batch"
	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/config"
	"github.com/airenas/groq-transcriber/internal/pkg/saver"
	"github.com/airenas/groq-transcriber/internal/pkg/transcriber"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

var rootCmd = &cobra.Command{
	Use:   "transcribeCli [flags] AUDIO_FILE...",
	Short: "Groq speech-to-text CLI",
	Long:  `Command line tool to transcribe audio files using the Groq Cloud transcription API`,
	Args:  cobra.ArbitraryArgs,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file or directory for transcription results")
	rootCmd.PersistentFlags().StringP("format", "f", "verbose_json", "Response format: json, verbose_json, text")
	rootCmd.PersistentFlags().StringP("model", "m", "", "Model ID or configured alias (default \""+string(transcription.DefaultModel)+"\")")
	rootCmd.PersistentFlags().StringP("language", "l", "", "Optional language hint")
	rootCmd.PersistentFlags().Bool("validate-only", false, "Only validate audio files without transcribing")
	rootCmd.PersistentFlags().Int("workers", 1, "Number of parallel transcription requests")
	cmdapp.Config.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	cmdapp.Config.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	cmdapp.Config.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	cmdapp.Config.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	cmdapp.Config.BindPFlag("validateOnly", rootCmd.PersistentFlags().Lookup("validate-only"))
	cmdapp.Config.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	cmdapp.Config.SetDefault("groq.url", transcriber.DefaultURL)
	cmdapp.Config.SetDefault("groq.timeout", "60s")
}

// Execute starts the app
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Debug("Starting transcribeCli")
	var data ServiceData
	var err error

	data.Format, err = transcription.ParseFormat(cmdapp.Config.GetString("format"))
	cmdapp.CheckOrPanic(err, "")

	model, err := resolveModel(cmdapp.Config.GetString("model"))
	cmdapp.CheckOrPanic(err, "")

	data.Validator = audio.NewValidator()
	data.ValidateOnly = cmdapp.Config.GetBool("validateOnly")
	if !data.ValidateOnly {
		client, err := transcriber.NewClient(transcriber.Config{
			URL:     cmdapp.Config.GetString("groq.url"),
			Key:     cmdapp.Config.GetString("groq.api.key"),
			Model:   model,
			Timeout: cmdapp.Config.GetDuration("groq.timeout")})
		cmdapp.CheckOrPanic(err, "Can't init transcriber client. Is GROQ_API_KEY set?")

		data.Runner, err = batch.NewRunner(data.Validator, client, cmdapp.Config.GetInt("workers"))
		cmdapp.CheckOrPanic(err, "Can't init batch runner")
	}

	data.Exporter = saver.NewExporter()
	data.Output = cmdapp.Config.GetString("output")
	data.Language = cmdapp.Config.GetString("language")
	data.Model = model

	err = runService(&data, args)
	cmdapp.CheckOrPanic(err, "")
	cmdapp.Log.Debug("Done")
}

// resolveModel accepts a canonical model ID or an alias from the model map
func resolveModel(name string) (transcription.Model, error) {
	if name == "" {
		return "", nil
	}
	m, err := transcription.ParseModel(name)
	if err == nil {
		return m, nil
	}
	mPath := cmdapp.Config.GetString("modelMap.path")
	if mPath != "" {
		mMap, errM := config.NewFileModelMap(mPath)
		if errM != nil {
			return "", errM
		}
		if m, errM = mMap.Get(name); errM == nil {
			cmdapp.Log.Infof("Resolved model '%s' to '%s'", name, m)
			return m, nil
		}
		if !errors.Is(errM, config.ErrModelNotFound) {
			return "", errM
		}
	}
	return "", err
}
