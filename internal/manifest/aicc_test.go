package manifest

import "testing"

func TestParseAICCDescriptors(t *testing.T) {
	crs := "[Course]\r\nCourse_ID=AICC101\r\nCourse_Title=Intro to AICC\r\n"
	au := "System_ID,AU_Title,File_Name\r\nAU1,Unit One,au1/launch.html\r\n"
	m := ParseAICCDescriptors([]byte(crs), []byte(au))
	if m.CourseID != "AICC101" {
		t.Fatalf("CourseID = %q", m.CourseID)
	}
	if m.CourseTitle != "Intro to AICC" {
		t.Fatalf("CourseTitle = %q", m.CourseTitle)
	}
	if len(m.AUs) != 1 || m.AUs[0].URL != "au1/launch.html" {
		t.Fatalf("AUs = %+v", m.AUs)
	}

	pm := m.ToPackageManifest()
	if pm.Identifier == nil || *pm.Identifier != "AICC101" {
		t.Fatalf("Identifier = %v", pm.Identifier)
	}
	if pm.LaunchURL == nil || *pm.LaunchURL != "au1/launch.html" {
		t.Fatalf("LaunchURL = %v", pm.LaunchURL)
	}
}
