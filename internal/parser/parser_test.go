package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

// TestMain mirrors the teacher's internal/core/goleak_test.go: ParseAll
// fans work out across goroutines via errgroup, so every test in this
// package is checked for leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const validSCORM12Manifest = `<?xml version="1.0"?>
<manifest identifier="MANIFEST_1" xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_rootv1p2">
  <organizations default="org_1">
    <organization identifier="org_1">
      <title>Course One</title>
      <item identifier="item_1" identifierref="resource_1"><title>Lesson One</title></item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="resource_1" type="webcontent" adlcp:scormtype="sco" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`

const brokenSCORM12Manifest = `<?xml version="1.0"?>
<manifest identifier="MANIFEST_1">
  <organizations default="org_1">
    <organization identifier="org_1">
      <item identifier="item_1" identifierref="resource_missing"/>
    </organization>
  </organizations>
  <resources>
    <resource identifier="resource_1" type="webcontent" adlcp:scormtype="sco" href="index.html"/>
  </resources>
</manifest>`

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func TestSCORM12ParserParseAndValidate(t *testing.T) {
	dir := writePackage(t, map[string]string{"imsmanifest.xml": validSCORM12Manifest, "index.html": "<html></html>"})
	fa, err := fileaccess.NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	p := NewSCORM12Parser(fa, Options{})
	result, err := p.ParseAndValidate()
	require.NoError(t, err)
	assert.False(t, result.Validation.HasErrors())
	assert.Equal(t, manifest.SCORM12, result.Metadata.ModuleType)
	assert.Equal(t, "MANIFEST_1", result.Metadata.Identifier)
	assert.Equal(t, "index.html", result.Metadata.LaunchURL)
	assert.NotEmpty(t, result.Metadata.ContentHash)
}

func TestSCORM12ParserLenientOnBrokenReference(t *testing.T) {
	dir := writePackage(t, map[string]string{"imsmanifest.xml": brokenSCORM12Manifest})
	fa, err := fileaccess.NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	p := NewSCORM12Parser(fa, Options{})
	result, err := p.ParseAndValidate()
	require.NoError(t, err)
	assert.True(t, result.Validation.HasErrors())
	assert.Equal(t, "MANIFEST_1", result.Metadata.Identifier)
}

func TestStrictWrapEscalatesValidationErrors(t *testing.T) {
	dir := writePackage(t, map[string]string{"imsmanifest.xml": brokenSCORM12Manifest})
	fa, err := fileaccess.NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	p := NewSCORM12Parser(fa, Options{StrictMode: true})
	_, err = StrictWrap(p, manifest.SCORM12, true)
	assert.Error(t, err)
}

func TestFactoryDetectsAndParsesSCORM12(t *testing.T) {
	dir := writePackage(t, map[string]string{"imsmanifest.xml": validSCORM12Manifest})

	factory := NewFactory()
	p, fa, mt, err := factory.Open(dir, Options{})
	require.NoError(t, err)
	defer fa.Close()

	assert.Equal(t, manifest.SCORM12, mt)
	result, err := p.ParseAndValidate()
	require.NoError(t, err)
	assert.False(t, result.Validation.HasErrors())
}

func TestFactoryUnknownPackageReturnsDetectionError(t *testing.T) {
	dir := writePackage(t, map[string]string{"readme.txt": "not a package"})

	factory := NewFactory()
	_, _, _, err := factory.Open(dir, Options{})
	assert.Error(t, err)
}

func TestParseAllBatchesIndependently(t *testing.T) {
	good := writePackage(t, map[string]string{"imsmanifest.xml": validSCORM12Manifest})
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	items, err := ParseAll(context.Background(), []string{good, missing}, Options{}, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.NoError(t, items[0].Err)
	assert.Equal(t, manifest.SCORM12, items[0].ModuleType)

	assert.Error(t, items[1].Err)
}
