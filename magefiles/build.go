//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds cullcheck into bin/.
func (Build) Cullcheck() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/cullcheck", "./cmd/cullcheck"), withStream())
	return err
}

// Runs go vet over every package.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
