package diff

import (
	"msforge/core/msdata"
)

func diffRun(a, b *msdata.Run, cfg *Config) (*msdata.Run, *msdata.Run, error) {
	aB, bA := &msdata.Run{}, &msdata.Run{}

	if !cfg.IgnoreMetadata {
		aB.ID, bA.ID = diffString(a.ID, b.ID)
		aB.DefaultInstrumentConfiguration, bA.DefaultInstrumentConfiguration = ptrDiff(a.DefaultInstrumentConfiguration, b.DefaultInstrumentConfiguration, cfg, diffInstrumentConfiguration)
		aB.Sample, bA.Sample = ptrDiff(a.Sample, b.Sample, cfg, diffSample)
		aB.StartTimeStamp, bA.StartTimeStamp = diffString(a.StartTimeStamp, b.StartTimeStamp)
		aB.DefaultSourceFile, bA.DefaultSourceFile = ptrDiff(a.DefaultSourceFile, b.DefaultSourceFile, cfg, diffSourceFile)
		aB.ParamContainer, bA.ParamContainer = diffParams(&a.ParamContainer, &b.ParamContainer, cfg)
	}

	if !cfg.IgnoreSpectra {
		x, y, err := diffSpectrumList(a.SpectrumList, b.SpectrumList, cfg)
		if err != nil {
			return nil, nil, err
		}
		aB.SpectrumList, bA.SpectrumList = x, y
		if d := listMaxDifference(x.DP); cfg.exceeds(d) {
			aB.AddUserParam(SpectrumBinaryDataDifference, d, xsdFloat)
			bA.AddUserParam(SpectrumBinaryDataDifference, d, xsdFloat)
		}
	}

	if !cfg.IgnoreChromatograms {
		x, y, err := diffChromatogramList(a.ChromatogramList, b.ChromatogramList, cfg)
		if err != nil {
			return nil, nil, err
		}
		aB.ChromatogramList, bA.ChromatogramList = x, y
		if d := listMaxDifference(x.DP); cfg.exceeds(d) {
			aB.AddUserParam(ChromatogramBinaryDataDifference, d, xsdFloat)
			bA.AddUserParam(ChromatogramBinaryDataDifference, d, xsdFloat)
		}
	}

	if !aB.Empty() || !bA.Empty() {
		aB.ID, bA.ID = a.ID, b.ID
	}
	return aB, bA, nil
}

func diffDocument(a, b *msdata.Document, cfg *Config) (*msdata.Document, *msdata.Document, error) {
	aB, bA := &msdata.Document{}, &msdata.Document{}
	var aVersion, bVersion string

	if !cfg.IgnoreMetadata {
		aB.Accession, bA.Accession = diffString(a.Accession, b.Accession)
		aB.ID, bA.ID = diffString(a.ID, b.ID)
		if !cfg.IgnoreVersions {
			aVersion, bVersion = diffString(a.Version, b.Version)
		}
		aB.CVs, bA.CVs = diffVocabularies(a.CVs, b.CVs)
		fa, fb := diffFileDescription(&a.FileDescription, &b.FileDescription, cfg)
		aB.FileDescription, bA.FileDescription = *fa, *fb
		aB.ParamGroups, bA.ParamGroups = vectorDiffDeep(a.ParamGroups, b.ParamGroups, cfg, diffParamGroup)
		aB.Samples, bA.Samples = vectorDiffDeep(a.Samples, b.Samples, cfg, diffSample)
		aB.Softwares, bA.Softwares = vectorDiffDeep(a.Softwares, b.Softwares, cfg, diffSoftware)
		aB.ScanSettings, bA.ScanSettings = vectorDiffDeep(a.ScanSettings, b.ScanSettings, cfg, diffScanSettings)
		aB.InstrumentConfigurations, bA.InstrumentConfigurations = vectorDiffDeep(a.InstrumentConfigurations, b.InstrumentConfigurations, cfg, diffInstrumentConfiguration)
		aB.DataProcessings, bA.DataProcessings = vectorDiffDeep(a.AllDataProcessings(), b.AllDataProcessings(), cfg, diffDataProcessing)
	}

	// list level processing is already covered by AllDataProcessings
	runCfg := *cfg
	runCfg.IgnoreDataProcessing = true
	ra, rb, err := diffRun(&a.Run, &b.Run, &runCfg)
	if err != nil {
		return nil, nil, err
	}
	aB.Run, bA.Run = *ra, *rb

	if !aB.Empty() || !bA.Empty() || aVersion != "" || bVersion != "" {
		aB.ID, bA.ID = a.ID, b.ID
		if aVersion != "" {
			aB.ID += " (" + aVersion + ")"
		}
		if bVersion != "" {
			bA.ID += " (" + bVersion + ")"
		}
	}
	return aB, bA, nil
}
