package detect

import (
	"testing"

	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
	"github.com/standardbeagle/elearning-parser/internal/manifest"
)

func zipWith(t *testing.T, files map[string]string) *fileaccess.Zip {
	t.Helper()
	data := buildZip(t, files)
	z, err := fileaccess.NewZipFromBytes("test.zip", data)
	if err != nil {
		t.Fatalf("NewZipFromBytes: %v", err)
	}
	return z
}

func TestDetectSCORMVersionFromSchema(t *testing.T) {
	fa := zipWith(t, map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?><manifest identifier="m"><metadata><schema>ADL SCORM</schema><schemaversion>1.2</schemaversion></metadata></manifest>`,
	})
	mt, err := DetectSCORMVersion(fa)
	if err != nil {
		t.Fatalf("DetectSCORMVersion: %v", err)
	}
	if mt != manifest.SCORM12 {
		t.Fatalf("module type = %v, want SCORM_1_2", mt)
	}
}

func TestDetectSCORMVersionFallsBackOnAdlcpNamespace(t *testing.T) {
	fa := zipWith(t, map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?><manifest identifier="m" xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_v1p3"></manifest>`,
	})
	mt, err := DetectSCORMVersion(fa)
	if err != nil {
		t.Fatalf("DetectSCORMVersion: %v", err)
	}
	if mt != manifest.SCORM2004 {
		t.Fatalf("module type = %v, want SCORM_2004", mt)
	}
}

func TestModuleTypeDetectorCMI5TakesPrecedenceOverAICC(t *testing.T) {
	fa := zipWith(t, map[string]string{
		"cmi5.xml":       `<?xml version="1.0"?><courseStructure><course id="c"><title/></course></courseStructure>`,
		"content/a.au":   "",
		"content/c.crs":  "",
	})
	d := NewModuleTypeDetector()
	mt, err := d.Detect(fa)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if mt != manifest.CMI5 {
		t.Fatalf("module type = %v, want CMI5 (priority 90 over AICC's 80)", mt)
	}
}

func TestModuleTypeDetectorAICCRequiresBothMarkers(t *testing.T) {
	fa := zipWith(t, map[string]string{
		"content/a.au": "",
	})
	d := NewModuleTypeDetector()
	_, err := d.Detect(fa)
	if err == nil {
		t.Fatal("expected Detection/Unknown without a matching .crs file")
	}
}

func TestModuleTypeDetectorXAPIIsOptIn(t *testing.T) {
	fa := zipWith(t, map[string]string{"tincan.xml": "<tincan/>"})
	d := NewModuleTypeDetector()
	if _, err := d.Detect(fa); err == nil {
		t.Fatal("expected Detection/Unknown: xAPI plugin is not in the default set")
	}
	d.RegisterXAPI()
	mt, err := d.Detect(fa)
	if err != nil {
		t.Fatalf("Detect after RegisterXAPI: %v", err)
	}
	if mt != manifest.XAPI {
		t.Fatalf("module type = %v, want XAPI", mt)
	}
}
