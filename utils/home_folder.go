package utils

import (
	"path"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

const HomeFolder = "~/.hashrand"

func ExpandPath(p string) (string, error) {
	return homedir.Expand(p)
}

func GetHomeFolder() string {
	if appHomeFolder, err := homedir.Expand(HomeFolder); err != nil {
		log.WithError(err).Warn("Error expanding home folder")
		return ""
	} else {
		return appHomeFolder
	}
}

func GetHomeFile(name string) string {
	return path.Join(GetHomeFolder(), name)
}
