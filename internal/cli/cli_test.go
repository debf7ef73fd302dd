// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/internal/cli"
	"github.com/katalvlaran/homalg/internal/complexfile"
	"github.com/katalvlaran/homalg/internal/config"
)

const loopFiltration = `stages:
  - [[0, 1], [1, 2]]
  - [[0, 2]]
  - []
  - [[0, 1, 2]]
`

type CLISuite struct {
	suite.Suite
	dir string
}

func (s *CLISuite) SetupTest() { s.dir = s.T().TempDir() }

// run executes the command tree and returns stdout and stderr.
func (s *CLISuite) run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func (s *CLISuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

// sample writes the given shape to a YAML file and returns its path.
func (s *CLISuite) sample(shape string, extra ...string) string {
	out, _, err := s.run(append([]string{"sample", shape}, extra...)...)
	s.Require().NoError(err)

	return s.write(shape+".yaml", out)
}

func (s *CLISuite) TestHomology_ProjectivePlane() {
	path := s.sample("rp2")
	out, _, err := s.run("homology", path)
	s.Require().NoError(err)
	s.Equal("H_0 = Z\nH_1 = Z/2\nH_2 = 0\n", out)

	out, _, err = s.run("homology", "-c", "Z2", path)
	s.Require().NoError(err)
	s.Equal("H_0 = Z/2\nH_1 = Z/2\nH_2 = Z/2\n", out)
}

func (s *CLISuite) TestHomology_FieldsAndStorage() {
	path := s.sample("klein")
	for _, args := range [][]string{
		{"homology", "-c", "Q", path},
		{"homology", "-c", "Q", "--storage", "dense", "-j", "1", path},
	} {
		out, _, err := s.run(args...)
		s.Require().NoError(err)
		s.Equal("H_0 = Q\nH_1 = Q\nH_2 = 0\n", out)
	}
}

func (s *CLISuite) TestHomology_Generators() {
	path := s.write("circle.toml", "simplices = [[0, 1], [1, 2], [0, 2]]\n")
	out, _, err := s.run("homology", "--generators", path)
	s.Require().NoError(err)
	s.Contains(out, "H_1 = Z\n\tZ: ")
	s.Contains(out, "[0,1]")
}

func (s *CLISuite) TestConfigFileAndOverrides() {
	cfg := s.write("homalg.toml", "coefficients = \"Z2\"\nstyle = \"unicode\"\n")
	path := s.sample("torus")

	out, _, err := s.run("--config", cfg, "homology", path)
	s.Require().NoError(err)
	s.Equal("H_0 = Z/2\nH_1 = Z/2 ⊕ Z/2\nH_2 = Z/2\n", out)

	out, _, err = s.run("--config", cfg, "-c", "Z", "--style", "ascii", "homology", path)
	s.Require().NoError(err)
	s.Equal("H_0 = Z\nH_1 = Z + Z\nH_2 = Z\n", out)
}

func (s *CLISuite) TestPersistence_Barcode() {
	path := s.write("loop.yaml", loopFiltration)
	out, _, err := s.run("persistence", "--barcode", path)
	s.Require().NoError(err)
	s.Equal("H_0 [0, inf) ####\nH_1 [1, 3)   .##.\n", out)

	out, _, err = s.run("persistence", "-c", "Z3", "--style", "unicode", path)
	s.Require().NoError(err)
	s.Contains(out, "H_1:\n\t[1, 3) : ")
}

func (s *CLISuite) TestPersistence_NeedsField() {
	path := s.write("loop.yaml", loopFiltration)
	_, _, err := s.run("persistence", "-c", "Z", path)
	s.Require().ErrorIs(err, algebra.ErrCapability)
}

func (s *CLISuite) TestVerboseLogsToStderr() {
	path := s.sample("rp2")
	out, errOut, err := s.run("-v", "homology", path)
	s.Require().NoError(err)
	s.NotContains(out, "level=debug")
	s.Contains(errOut, "homology: degree computed")
	s.Contains(errOut, "homalg: configuration resolved")
}

func (s *CLISuite) TestSample_RandomFlagFiltration() {
	out, _, err := s.run("sample", "random-flag", "-n", "6", "-p", "0.8", "--seed", "4", "--max-time", "2", "-f", "toml")
	s.Require().NoError(err)

	doc, err := complexfile.Decode(complexfile.TOML, []byte(out))
	s.Require().NoError(err)
	s.True(doc.IsFiltration())
	f, err := doc.Filtration()
	s.Require().NoError(err)
	s.LessOrEqual(f.Len(), 3)
	s.LessOrEqual(f.Final().Dim(), 2)
}

func (s *CLISuite) TestSample_Labels() {
	out, _, err := s.run("sample", "cycle", "-n", "4", "--labels", "letters")
	s.Require().NoError(err)
	s.Contains(out, "labels:")
	s.Contains(out, "D")
}

func (s *CLISuite) TestErrors() {
	_, _, err := s.run("homology", filepath.Join(s.dir, "absent.yaml"))
	s.Error(err)

	_, _, err = s.run("homology", s.write("c.json", "{}"))
	s.ErrorIs(err, complexfile.ErrFormat)

	_, _, err = s.run("homology", "-c", "R", s.sample("torus"))
	s.ErrorIs(err, config.ErrInvalid)

	_, _, err = s.run("sample", "mobius")
	s.ErrorIs(err, config.ErrInvalid)

	_, _, err = s.run("sample", "cycle", "-n", "2")
	s.Error(err)

	_, _, err = s.run("homology")
	s.Error(err)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestRootHelp(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())
	for _, sub := range []string{"homology", "persistence", "sample"} {
		require.Contains(t, out.String(), sub)
	}
}
