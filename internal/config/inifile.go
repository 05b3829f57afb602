package config

// This file loads the sectioned config.ini: one section per folder category
// plus [output] with the base folder. Key names within a section are
// arbitrary; only the values (paths) and their order matter.

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// ErrConfigNotFound marks a missing config file, so the CLI can print the
// example template instead of a bare error.
var ErrConfigNotFound = errors.New("configuration file not found")

// ExampleTemplate is printed when the config file is missing, to guide the
// user toward a working setup.
const ExampleTemplate = `[whatsapp_images]
folder1 = /path/to/whatsapp/images1
folder2 = /path/to/whatsapp/images2

[whatsapp_videos]
folder1 = /path/to/whatsapp/videos1

[image_folders]
folder1 = /path/to/mixed/media1
folder2 = /path/to/mixed/media2

[output]
base_folder = /path/to/output/directory
`

// groupOrder fixes the processing order of the folder categories.
var groupOrder = []Category{
	CategoryWhatsAppImages,
	CategoryWhatsAppVideos,
	CategoryRegular,
}

// LoadFolders reads the folder groups and output base path from the INI file
// at cfg.ConfigPath into cfg. A missing file surfaces as
// [ErrConfigNotFound] so callers can print [ExampleTemplate]. Missing
// sections are tolerated (empty groups); a missing or empty
// output.base_folder is an error.
func (c *Config) LoadFolders() error {
	if _, err := os.Stat(c.ConfigPath); err != nil {
		return fmt.Errorf("%w: %s", ErrConfigNotFound, c.ConfigPath)
	}

	f, err := ini.Load(c.ConfigPath)
	if err != nil {
		return err
	}

	groups := make([]FolderGroup, 0, len(groupOrder))
	for _, cat := range groupOrder {
		sec, err := f.GetSection(string(cat))
		if err != nil {
			continue
		}
		var folders []string
		for _, key := range sec.Keys() {
			if v := key.String(); v != "" {
				folders = append(folders, v)
			}
		}
		if len(folders) > 0 {
			groups = append(groups, FolderGroup{Category: cat, Folders: folders})
		}
	}

	out, err := f.GetSection("output")
	if err != nil {
		return fmt.Errorf("config %s: missing [output] section", c.ConfigPath)
	}
	base := out.Key("base_folder").String()
	if base == "" {
		return fmt.Errorf("config %s: output.base_folder must not be empty", c.ConfigPath)
	}

	c.Groups = groups
	c.OutputBase = base
	return nil
}
