package diff

import (
	"msforge/core/cv"
	"msforge/core/msdata"
	"msforge/core/params"
)

func diffParams(a, b *params.ParamContainer, cfg *Config) (aB, bA params.ParamContainer) {
	aB.ParamGroups, bA.ParamGroups = vectorDiffDeep(a.ParamGroups, b.ParamGroups, cfg, diffParamGroup)
	aB.CVParams, bA.CVParams = vectorDiff(a.CVParams, b.CVParams)
	aB.UserParams, bA.UserParams = vectorDiff(a.UserParams, b.UserParams)
	return aB, bA
}

func diffParamGroup(a, b *params.ParamGroup, cfg *Config) (*params.ParamGroup, *params.ParamGroup) {
	aB, bA := &params.ParamGroup{}, &params.ParamGroup{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffVocabularies(a, b []cv.Vocabulary) ([]cv.Vocabulary, []cv.Vocabulary) {
	return vectorDiff(a, b)
}

func diffSourceFile(a, b *msdata.SourceFile, cfg *Config) (*msdata.SourceFile, *msdata.SourceFile) {
	aB, bA := &msdata.SourceFile{}, &msdata.SourceFile{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	aB.Name, bA.Name = diffString(a.Name, b.Name)
	aB.Location, bA.Location = diffString(a.Location, b.Location)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffContact(a, b *msdata.Contact, cfg *Config) (*msdata.Contact, *msdata.Contact) {
	aB, bA := &msdata.Contact{}, &msdata.Contact{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffFileDescription(a, b *msdata.FileDescription, cfg *Config) (*msdata.FileDescription, *msdata.FileDescription) {
	aB, bA := &msdata.FileDescription{}, &msdata.FileDescription{}
	aB.FileContent, bA.FileContent = diffParams(&a.FileContent, &b.FileContent, cfg)
	aB.SourceFiles, bA.SourceFiles = vectorDiffDeep(a.SourceFiles, b.SourceFiles, cfg, diffSourceFile)
	aB.Contacts, bA.Contacts = vectorDiffDiff(a.Contacts, b.Contacts, cfg, diffContact)
	return aB, bA
}

func diffSample(a, b *msdata.Sample, cfg *Config) (*msdata.Sample, *msdata.Sample) {
	aB, bA := &msdata.Sample{}, &msdata.Sample{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	aB.Name, bA.Name = diffString(a.Name, b.Name)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffComponent(a, b *msdata.Component, cfg *Config) (*msdata.Component, *msdata.Component) {
	aB, bA := &msdata.Component{}, &msdata.Component{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.Order, bA.Order = diffScalar(a.Order, b.Order, 0)
	aB.Type, bA.Type = diffScalar(a.Type, b.Type, msdata.ComponentUnknown)
	if !aB.Empty() || !bA.Empty() {
		aB.Type, bA.Type = a.Type, b.Type
		aB.Order, bA.Order = a.Order, b.Order
	}
	return aB, bA
}

func diffSoftware(a, b *msdata.Software, cfg *Config) (*msdata.Software, *msdata.Software) {
	aB, bA := &msdata.Software{}, &msdata.Software{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	if !cfg.IgnoreVersions {
		aB.Version, bA.Version = diffString(a.Version, b.Version)
	}
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffTarget(a, b *msdata.Target, cfg *Config) (*msdata.Target, *msdata.Target) {
	aB, bA := &msdata.Target{}, &msdata.Target{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffScanSettings(a, b *msdata.ScanSettings, cfg *Config) (*msdata.ScanSettings, *msdata.ScanSettings) {
	aB, bA := &msdata.ScanSettings{}, &msdata.ScanSettings{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	aB.SourceFiles, bA.SourceFiles = vectorDiffDeep(a.SourceFiles, b.SourceFiles, cfg, diffSourceFile)
	aB.Targets, bA.Targets = vectorDiffDiff(a.Targets, b.Targets, cfg, diffTarget)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffInstrumentConfiguration(a, b *msdata.InstrumentConfiguration, cfg *Config) (*msdata.InstrumentConfiguration, *msdata.InstrumentConfiguration) {
	aB, bA := &msdata.InstrumentConfiguration{}, &msdata.InstrumentConfiguration{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	aB.ComponentList, bA.ComponentList = vectorDiffDiff(a.ComponentList, b.ComponentList, cfg, diffComponent)
	aB.Software, bA.Software = ptrDiff(a.Software, b.Software, cfg, diffSoftware)
	aB.ScanSettings, bA.ScanSettings = ptrDiff(a.ScanSettings, b.ScanSettings, cfg, diffScanSettings)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffProcessingMethod(a, b *msdata.ProcessingMethod, cfg *Config) (*msdata.ProcessingMethod, *msdata.ProcessingMethod) {
	aB, bA := &msdata.ProcessingMethod{}, &msdata.ProcessingMethod{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.Order, bA.Order = diffScalar(a.Order, b.Order, 0)
	aB.Software, bA.Software = ptrDiff(a.Software, b.Software, cfg, diffSoftware)
	if !aB.Empty() || !bA.Empty() {
		aB.Order, bA.Order = a.Order, b.Order
	}
	return aB, bA
}

func diffDataProcessing(a, b *msdata.DataProcessing, cfg *Config) (*msdata.DataProcessing, *msdata.DataProcessing) {
	aB, bA := &msdata.DataProcessing{}, &msdata.DataProcessing{}
	aB.ID, bA.ID = diffString(a.ID, b.ID)
	aB.ProcessingMethods, bA.ProcessingMethods = vectorDiffDiff(a.ProcessingMethods, b.ProcessingMethods, cfg, diffProcessingMethod)
	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA
}

func diffScanWindow(a, b *msdata.ScanWindow, cfg *Config) (*msdata.ScanWindow, *msdata.ScanWindow) {
	aB, bA := &msdata.ScanWindow{}, &msdata.ScanWindow{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffScan(a, b *msdata.Scan, cfg *Config) (*msdata.Scan, *msdata.Scan) {
	aB, bA := &msdata.Scan{}, &msdata.Scan{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.SpectrumID, bA.SpectrumID = diffString(a.SpectrumID, b.SpectrumID)
	aB.ExternalSpectrumID, bA.ExternalSpectrumID = diffString(a.ExternalSpectrumID, b.ExternalSpectrumID)
	aB.SourceFile, bA.SourceFile = ptrDiff(a.SourceFile, b.SourceFile, cfg, diffSourceFile)
	aB.InstrumentConfiguration, bA.InstrumentConfiguration = ptrDiff(a.InstrumentConfiguration, b.InstrumentConfiguration, cfg, diffInstrumentConfiguration)
	aB.ScanWindows, bA.ScanWindows = vectorDiffDiff(a.ScanWindows, b.ScanWindows, cfg, diffScanWindow)
	if !aB.Empty() || !bA.Empty() {
		aB.InstrumentConfiguration, bA.InstrumentConfiguration = a.InstrumentConfiguration, b.InstrumentConfiguration
	}
	return aB, bA
}

func diffScanList(a, b *msdata.ScanList, cfg *Config) (*msdata.ScanList, *msdata.ScanList) {
	aB, bA := &msdata.ScanList{}, &msdata.ScanList{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	aB.Scans, bA.Scans = vectorDiffDiff(a.Scans, b.Scans, cfg, diffScan)
	return aB, bA
}

func diffIsolationWindow(a, b *msdata.IsolationWindow, cfg *Config) (*msdata.IsolationWindow, *msdata.IsolationWindow) {
	aB, bA := &msdata.IsolationWindow{}, &msdata.IsolationWindow{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffSelectedIon(a, b *msdata.SelectedIon, cfg *Config) (*msdata.SelectedIon, *msdata.SelectedIon) {
	aB, bA := &msdata.SelectedIon{}, &msdata.SelectedIon{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffActivation(a, b *msdata.Activation, cfg *Config) (*msdata.Activation, *msdata.Activation) {
	aB, bA := &msdata.Activation{}, &msdata.Activation{}
	aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	return aB, bA
}

func diffPrecursor(a, b *msdata.Precursor, cfg *Config) (*msdata.Precursor, *msdata.Precursor) {
	aB, bA := &msdata.Precursor{}, &msdata.Precursor{}
	aB.SelectedIons, bA.SelectedIons = vectorDiffDiff(a.SelectedIons, b.SelectedIons, cfg, diffSelectedIon)
	if !cfg.IgnoreMetadata {
		if !cfg.IgnoreIdentity {
			aB.SpectrumID, bA.SpectrumID = diffString(a.SpectrumID, b.SpectrumID)
		}
		aB.ExternalSpectrumID, bA.ExternalSpectrumID = diffString(a.ExternalSpectrumID, b.ExternalSpectrumID)
		aB.SourceFile, bA.SourceFile = ptrDiff(a.SourceFile, b.SourceFile, cfg, diffSourceFile)
		iw, jw := diffIsolationWindow(&a.IsolationWindow, &b.IsolationWindow, cfg)
		aB.IsolationWindow, bA.IsolationWindow = *iw, *jw
		ia, ja := diffActivation(&a.Activation, &b.Activation, cfg)
		aB.Activation, bA.Activation = *ia, *ja
		aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	}
	if !aB.Empty() || !bA.Empty() {
		aB.SpectrumID, bA.SpectrumID = a.SpectrumID, b.SpectrumID
	}
	return aB, bA
}

func diffProduct(a, b *msdata.Product, cfg *Config) (*msdata.Product, *msdata.Product) {
	aB, bA := &msdata.Product{}, &msdata.Product{}
	if !cfg.IgnoreMetadata {
		iw, jw := diffIsolationWindow(&a.IsolationWindow, &b.IsolationWindow, cfg)
		aB.IsolationWindow, bA.IsolationWindow = *iw, *jw
	}
	return aB, bA
}
