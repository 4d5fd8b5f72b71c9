package xsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifestXML = `<?xml version="1.0"?>
<manifest identifier="MANIFEST_1">
  <organizations default="org_1">
    <organization identifier="org_1">
      <title>Course One</title>
      <item identifier="item_1" identifierref="resource_1"><title>Lesson One</title></item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="resource_1" type="webcontent" scormtype="sco" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`

func TestValidateSCORM2004ManifestAcceptsValidDocument(t *testing.T) {
	result, err := ValidateSCORM2004Manifest([]byte(validManifestXML))
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
}

func TestValidateSCORM2004ManifestFlagsMissingRequiredAttribute(t *testing.T) {
	missingIdentifier := `<?xml version="1.0"?><manifest></manifest>`
	result, err := ValidateSCORM2004Manifest([]byte(missingIdentifier))
	require.NoError(t, err)
	assert.True(t, result.HasErrors())
}
