package cli

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"dex-chunker/dex/dheader"
	"github.com/go-stdlog/stdlog"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func dexBytes(dataSize int) []byte {
	bs := dheader.Encode(dheader.Header{
		Magic:      []byte("dex\n035\x00"),
		HeaderSize: dheader.HeaderSize,
		DataSize:   uint32(dataSize),
		DataOffset: dheader.HeaderSize,
	})
	return append(bs, bytes.Repeat([]byte{0x5A}, dataSize)...)
}

type CLITestSuite struct {
	Dir    string
	Stdout *bytes.Buffer
	App    App
	R      *require.Assertions
	suite.Suite
}

func (suite *CLITestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()
	suite.Stdout = &bytes.Buffer{}
	suite.App = App{
		Stdout: suite.Stdout,
		Logger: stdlog.Discard,
	}
}

func (suite *CLITestSuite) writeFile(name string, bs []byte) string {
	path := filepath.Join(suite.Dir, name)
	suite.R.NoError(os.WriteFile(path, bs, 0644))
	return path
}

func (suite *CLITestSuite) listDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	suite.R.NoError(err)
	return lo.Map(entries, func(entry os.DirEntry, _ int) string { return entry.Name() })
}

func (suite *CLITestSuite) TestRunSplit_Discover() {
	suite.writeFile("classes.dex", dexBytes(10))
	suite.writeFile("classes2.dex", dexBytes(0))
	suite.App.Config.ChunkSize = 4

	err := suite.App.RunSplit(SplitCmd{Dir: suite.Dir})
	suite.R.NoError(err)

	suite.R.ElementsMatch(
		[]string{
			"classes.dex",
			"classes2.dex",
			"classes_data_section_chunk_1.bin",
			"classes_data_section_chunk_2.bin",
			"classes_data_section_chunk_3.bin",
		},
		suite.listDir(suite.Dir),
	)
	suite.R.Contains(suite.Stdout.String(), "DEX Header Information for classes.dex:")
	suite.R.Contains(suite.Stdout.String(), "DEX Header Information for classes2.dex:")
}

func (suite *CLITestSuite) TestRunSplit_FlagsOverConfig() {
	path := suite.writeFile("app.dex", dexBytes(10))
	outputDir := suite.T().TempDir()
	suite.App.Config = Config{OutputDir: suite.T().TempDir(), ChunkSize: 4}

	err := suite.App.RunSplit(SplitCmd{Paths: []string{path}, Output: outputDir, ChunkSize: 8})
	suite.R.NoError(err)

	suite.R.ElementsMatch(
		[]string{"app_data_section_chunk_1.bin", "app_data_section_chunk_2.bin"},
		suite.listDir(outputDir),
	)
	info, err := os.Stat(filepath.Join(outputDir, "app_data_section_chunk_2.bin"))
	suite.R.NoError(err)
	suite.R.Equal(int64(8), info.Size())
	suite.R.Empty(suite.listDir(suite.App.Config.OutputDir))
}

func (suite *CLITestSuite) TestRunSplit_NoFiles() {
	err := suite.App.RunSplit(SplitCmd{Dir: suite.Dir})

	suite.R.NoError(err)
	suite.R.Contains(suite.Stdout.String(), "No classes.dex files found")
}

func (suite *CLITestSuite) TestRunSplit_ReportsFailures() {
	suite.writeFile("classes.dex", dexBytes(3))
	suite.writeFile("classes2.dex", []byte("not a dex file at all"))

	err := suite.App.RunSplit(SplitCmd{Dir: suite.Dir})

	suite.R.EqualError(err, "1 of 2 files failed")
	suite.R.Contains(suite.listDir(suite.Dir), "classes_data_section_chunk_1.bin")
}

func (suite *CLITestSuite) TestRunHeader() {
	path := suite.writeFile("classes.dex", dexBytes(7))

	err := suite.App.RunHeader(HeaderCmd{Paths: []string{path}})
	suite.R.NoError(err)

	suite.R.Contains(suite.Stdout.String(), "DEX Header Information for classes.dex:\n")
	suite.R.Contains(suite.Stdout.String(), "data_size: 7\n")
	suite.R.Contains(suite.Stdout.String(), "data_offset: 112\n")
	// header only, nothing is split
	suite.R.Equal([]string{"classes.dex"}, suite.listDir(suite.Dir))
}

func (suite *CLITestSuite) TestRunHeader_JSON() {
	path := suite.writeFile("classes.dex", dexBytes(7))

	err := suite.App.RunHeader(HeaderCmd{Paths: []string{path}, JSON: true})
	suite.R.NoError(err)

	decoded := []struct {
		Path   string         `json:"path"`
		Header map[string]any `json:"header"`
	}{}
	suite.R.NoError(json.Unmarshal(suite.Stdout.Bytes(), &decoded))
	suite.R.Len(decoded, 1)
	suite.R.Equal(path, decoded[0].Path)
	suite.R.EqualValues(7, decoded[0].Header["data_size"])
	suite.R.EqualValues(112, decoded[0].Header["header_size"])
}

func (suite *CLITestSuite) TestRunHeader_Missing() {
	err := suite.App.RunHeader(HeaderCmd{Paths: []string{filepath.Join(suite.Dir, "nope.dex")}})

	suite.R.EqualError(err, "1 of 1 files failed")
}

func (suite *CLITestSuite) TestRunExtract() {
	apkPath := filepath.Join(suite.T().TempDir(), "app.apk")
	f, err := os.Create(apkPath)
	suite.R.NoError(err)
	w := zip.NewWriter(f)
	entry, err := w.Create("classes.dex")
	suite.R.NoError(err)
	_, err = entry.Write(dexBytes(5))
	suite.R.NoError(err)
	suite.R.NoError(w.Close())
	suite.R.NoError(f.Close())

	err = suite.App.RunExtract(ExtractCmd{APK: apkPath, Output: suite.Dir, Split: true, ChunkSize: 2})
	suite.R.NoError(err)

	suite.R.ElementsMatch(
		[]string{
			"classes.dex",
			"classes_data_section_chunk_1.bin",
			"classes_data_section_chunk_2.bin",
			"classes_data_section_chunk_3.bin",
		},
		suite.listDir(suite.Dir),
	)
}

func (suite *CLITestSuite) TestRunExtract_NoOutput() {
	err := suite.App.RunExtract(ExtractCmd{APK: "app.apk"})

	suite.R.ErrorContains(err, "output directory is required")
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
