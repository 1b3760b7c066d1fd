//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Culls the scene given in $SCENE (default scenes/demo.yaml) with cullcheck.
func (Run) Cullcheck() error {
	mg.Deps(Build.Cullcheck)

	scene := envOr("SCENE", "scenes/demo.yaml")
	fmt.Println("Run cullcheck...")
	_, err := executeCmd("bin/cullcheck", withArgs("-scene", scene), withStream())
	return err
}
