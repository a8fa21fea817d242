package algorithms_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAlgorithms(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Algorithms Suite")
}
