package manifest

import "testing"

const scorm2004Sample = `<?xml version="1.0"?>
<manifest identifier="MANIFEST_2004" xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_v1p3">
  <metadata><schema>ADL SCORM</schema><schemaversion>2004 4th Edition</schemaversion></metadata>
  <organizations default="org_1">
    <organization identifier="org_1">
      <title>Course 2004</title>
      <item identifier="mod_1" identifierref="res_1" isvisible="true">
        <title>Module One</title>
        <item identifier="mod_1_1" identifierref="res_2">
          <title>Sub-module</title>
        </item>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="res_1" type="webcontent" adlcp:scormtype="sco" href="mod1/index.html"/>
    <resource identifier="res_2" type="webcontent" adlcp:scormtype="sco" href="mod1/sub.html"/>
  </resources>
</manifest>`

func TestDecodeSCORM2004BuildsActivityTree(t *testing.T) {
	raw, _, err := DecodeSCORM2004Manifest([]byte(scorm2004Sample), "imsmanifest.xml")
	if err != nil {
		t.Fatalf("DecodeSCORM2004Manifest: %v", err)
	}
	pm := raw.ToPackageManifest()

	if pm.ActivityTree == nil {
		t.Fatal("expected an ActivityTree to be built from the default organization")
	}
	tree := pm.ActivityTree
	if tree.Root.Identifier != "org_1" {
		t.Fatalf("root identifier = %q, want org_1", tree.Root.Identifier)
	}
	if tree.Root.Leaf {
		t.Fatal("root has children and must not be a leaf")
	}
	mod1, ok := tree.Node("mod_1")
	if !ok {
		t.Fatal("expected mod_1 in the identifier index")
	}
	if mod1.Leaf {
		t.Fatal("mod_1 has a child and must not be a leaf")
	}
	sub, ok := tree.Node("mod_1_1")
	if !ok || !sub.Leaf {
		t.Fatalf("mod_1_1 = %+v, ok=%v, want a leaf node", sub, ok)
	}
	if sub.ResourceIdentifier == nil || *sub.ResourceIdentifier != "res_2" {
		t.Fatalf("mod_1_1 ResourceIdentifier = %v", sub.ResourceIdentifier)
	}

	leaves := tree.LeafNodes()
	if len(leaves) != 1 || leaves[0].Identifier != "mod_1_1" {
		t.Fatalf("LeafNodes() = %+v, want exactly [mod_1_1]", leaves)
	}
}
