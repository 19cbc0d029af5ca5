package main

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/folio-cms/folio/cmd/folio/config"
	"github.com/folio-cms/folio/storage/model"
)

var configFile string

// contentExport is a snapshot of all stored portfolio content
type contentExport struct {
	ExportedAt int64               `json:"exported_at"`
	Settings   *model.SiteSettings `json:"settings,omitempty"`
	Projects   []model.Project     `json:"projects"`
	Education  []model.Education   `json:"education"`
	SkillIcons []model.SkillIcon   `json:"skills"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored content as JSON",
	Long: `Export all stored content as JSON.

The database is taken from the storage section of the server
configuration and its environment overrides; the other sections are not
read, so the admin credentials need not be set. The snapshot is written
to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		backs, err := loadBackends()
		if err != nil {
			return err
		}
		export, err := exportContent(backs)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(export)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&configFile, "config", "c", "", "the config file to use")
}

func loadBackends() (model.Backends, error) {
	backs, err := config.OpenStorage(configFile)
	if err != nil {
		return model.Backends{}, err
	}
	log.Info("Opened database")
	return backs, nil
}

func exportContent(backs model.Backends) (*contentExport, error) {
	export := &contentExport{ExportedAt: time.Now().Unix()}
	settings, err := backs.Settings.Current()
	if err != nil {
		var notFound model.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "could not read site settings")
		}
		settings = nil
	}
	export.Settings = settings
	if export.Projects, err = backs.Projects.List(); err != nil {
		return nil, errors.Wrap(err, "could not read projects")
	}
	if export.Education, err = backs.Education.List(); err != nil {
		return nil, errors.Wrap(err, "could not read education")
	}
	if export.SkillIcons, err = backs.SkillIcons.List(); err != nil {
		return nil, errors.Wrap(err, "could not read skill icons")
	}
	return export, nil
}
