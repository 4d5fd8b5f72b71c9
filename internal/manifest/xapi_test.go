package manifest

import "testing"

func TestDecodeXAPIManifest(t *testing.T) {
	doc := `<?xml version="1.0"?>
<tincan>
  <activities>
    <activity id="http://example.com/activities/intro">
      <name>Intro Activity</name>
      <launch>content/index.html</launch>
    </activity>
  </activities>
</tincan>`
	raw, _, err := DecodeXAPIManifest([]byte(doc), "tincan.xml")
	if err != nil {
		t.Fatalf("DecodeXAPIManifest: %v", err)
	}
	pm := raw.ToPackageManifest()
	if pm.Title == nil || *pm.Title != "Intro Activity" {
		t.Fatalf("Title = %v", pm.Title)
	}
	if pm.LaunchURL == nil || *pm.LaunchURL != "content/index.html" {
		t.Fatalf("LaunchURL = %v", pm.LaunchURL)
	}
}

func TestDecodeXAPIManifestMissingLaunchURL(t *testing.T) {
	doc := `<?xml version="1.0"?>
<tincan><activities><activity id="a1"><name>No Launch</name></activity></activities></tincan>`
	raw, _, err := DecodeXAPIManifest([]byte(doc), "tincan.xml")
	if err != nil {
		t.Fatalf("DecodeXAPIManifest: %v", err)
	}
	pm := raw.ToPackageManifest()
	if pm.LaunchURL != nil {
		t.Fatalf("LaunchURL = %v, want nil", pm.LaunchURL)
	}
}
