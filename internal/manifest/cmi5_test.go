package manifest

import "testing"

func TestDecodeCMI5MissingLaunchURL(t *testing.T) {
	doc := `<?xml version="1.0"?>
<courseStructure>
  <course id="course_1">
    <title><langstring lang="en">Intro Course</langstring></title>
  </course>
  <au id="au_1">
    <title><langstring lang="en">Module One</langstring></title>
  </au>
</courseStructure>`
	raw, _, err := DecodeCMI5Manifest([]byte(doc), "cmi5.xml")
	if err != nil {
		t.Fatalf("DecodeCMI5Manifest: %v", err)
	}
	pm := raw.ToPackageManifest()
	if pm.Title == nil || *pm.Title != "Intro Course" {
		t.Fatalf("Title = %v", pm.Title)
	}
	if pm.LaunchURL != nil {
		t.Fatalf("LaunchURL = %v, want nil (no AU has a url)", pm.LaunchURL)
	}
}

func TestDecodeCMI5WithLaunchURL(t *testing.T) {
	doc := `<?xml version="1.0"?>
<courseStructure>
  <course id="course_1"><title><langstring lang="en">C</langstring></title></course>
  <au id="au_1"><title><langstring lang="en">A</langstring></title><url>content/index.html</url></au>
</courseStructure>`
	raw, _, err := DecodeCMI5Manifest([]byte(doc), "cmi5.xml")
	if err != nil {
		t.Fatalf("DecodeCMI5Manifest: %v", err)
	}
	pm := raw.ToPackageManifest()
	if pm.LaunchURL == nil || *pm.LaunchURL != "content/index.html" {
		t.Fatalf("LaunchURL = %v", pm.LaunchURL)
	}
}
