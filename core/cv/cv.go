package cv

import (
	"fmt"
	"strings"
)

// CVID identifies a controlled vocabulary term.
type CVID int

// Unknown is the zero term id. A CVParam carrying it is considered unset.
const Unknown CVID = 0

// MS and UO terms known to the toolkit.
const (
	MSSampleName CVID = iota + 1
	MSIonizationType
	MSDetectorType
	MSChargeState
	MSPeakIntensity
	MSDissociationMethod
	MSCollisionEnergy
	MSElectrosprayIonization
	MSSelectedIonMZ
	MSMZ
	MSInstrumentModel
	MSQuadrupole
	MSCentroidSpectrum
	MSProfileSpectrum
	MSNegativeScan
	MSPositiveScan
	MSNumberOfDetectorCounts
	MSCollisionInducedDissociation
	MSScanStartTime
	MSIonTrap
	MSTotalIonCurrent
	MSTotalIonCurrentChromatogram
	MSElectronMultiplier
	MSDataTransformation
	MSMassAnalyzerType
	MSScanPolarity
	MSScanWindowUpperLimit
	MSScanWindowLowerLimit
	MSBaseMZ
	MSBasePeakIntensity
	MSMSLevel
	MSFilterString
	MSBinaryDataArray
	MSMZArray
	MSIntensityArray
	MSBinaryDataType
	MS32BitFloat
	MS64BitFloat
	MSSpectrumRepresentation
	MSHighestObservedMZ
	MSLowestObservedMZ
	MSInstrumentSerialNumber
	MSFileFormatConversion
	MSSoftware
	MSXcalibur
	MSConversionToMzML
	MSSpectrumType
	MSMassSpectrometerFileFormat
	MSDataFileChecksumType
	MSThermoRAWFormat
	MSSHA1
	MSBinaryDataCompressionType
	MSZlibCompression
	MSNoCompression
	MSMS1Spectrum
	MSMSnSpectrum
	MSMzMLFormat
	MSContactName
	MSContactEmail
	MSContactAffiliation
	MSLowIntensityDataPointRemoval
	MSTimeArray
	MSProteoWizardSoftware
	MSPresetScanConfiguration
	MSInductiveDetector
	MSChromatogramType
	MSSelectedIonCurrentChromatogram
	MSNativeSpectrumIdentifierFormat
	MSThermoNativeIDFormat
	MSOrbitrap
	MSIsolationWindowTargetMZ
	MSIsolationWindowLowerOffset
	MSIsolationWindowUpperOffset
	MSSelectedReactionMonitoringChromatogram
	MSPeakPicking
	MSDataFiltering
	UOTimeUnit
	UOSecond
	UOMinute
	UOElectronvolt
	UONumberOfCounts
)

// MSThresholding is the processing term recorded by intensity thresholding.
const MSThresholding = MSLowIntensityDataPointRemoval

// Term describes a single vocabulary entry.
type Term struct {
	// ID is the enumerated term id.
	ID CVID
	// Accession is the prefixed accession, e.g. "MS:1000515".
	Accession string
	// Name is the human readable term name.
	Name string
	// Parents lists the direct is-a parents of the term.
	Parents []CVID
}

// Prefix returns the vocabulary prefix of the accession ("MS", "UO").
func (t Term) Prefix() string {
	if i := strings.IndexByte(t.Accession, ':'); i > 0 {
		return t.Accession[:i]
	}
	return ""
}

var terms = map[CVID]Term{
	Unknown:                                  {Unknown, "??:0000000", "CVID_Unknown", nil},
	MSSampleName:                             {MSSampleName, "MS:1000002", "sample name", nil},
	MSIonizationType:                         {MSIonizationType, "MS:1000008", "ionization type", nil},
	MSDetectorType:                           {MSDetectorType, "MS:1000026", "detector type", nil},
	MSInstrumentModel:                        {MSInstrumentModel, "MS:1000031", "instrument model", nil},
	MSMZ:                                     {MSMZ, "MS:1000040", "m/z", nil},
	MSChargeState:                            {MSChargeState, "MS:1000041", "charge state", nil},
	MSPeakIntensity:                          {MSPeakIntensity, "MS:1000042", "peak intensity", nil},
	MSDissociationMethod:                     {MSDissociationMethod, "MS:1000044", "dissociation method", nil},
	MSCollisionEnergy:                        {MSCollisionEnergy, "MS:1000045", "collision energy", nil},
	MSElectrosprayIonization:                 {MSElectrosprayIonization, "MS:1000073", "electrospray ionization", []CVID{MSIonizationType}},
	MSQuadrupole:                             {MSQuadrupole, "MS:1000081", "quadrupole", []CVID{MSMassAnalyzerType}},
	MSCentroidSpectrum:                       {MSCentroidSpectrum, "MS:1000127", "centroid spectrum", []CVID{MSSpectrumRepresentation}},
	MSProfileSpectrum:                        {MSProfileSpectrum, "MS:1000128", "profile spectrum", []CVID{MSSpectrumRepresentation}},
	MSNegativeScan:                           {MSNegativeScan, "MS:1000129", "negative scan", []CVID{MSScanPolarity}},
	MSPositiveScan:                           {MSPositiveScan, "MS:1000130", "positive scan", []CVID{MSScanPolarity}},
	MSNumberOfDetectorCounts:                 {MSNumberOfDetectorCounts, "MS:1000131", "number of detector counts", nil},
	MSCollisionInducedDissociation:           {MSCollisionInducedDissociation, "MS:1000133", "collision-induced dissociation", []CVID{MSDissociationMethod}},
	MSScanStartTime:                          {MSScanStartTime, "MS:1000016", "scan start time", nil},
	MSIonTrap:                                {MSIonTrap, "MS:1000264", "ion trap", []CVID{MSMassAnalyzerType}},
	MSTotalIonCurrent:                        {MSTotalIonCurrent, "MS:1000285", "total ion current", nil},
	MSTotalIonCurrentChromatogram:            {MSTotalIonCurrentChromatogram, "MS:1000235", "total ion current chromatogram", []CVID{MSChromatogramType}},
	MSElectronMultiplier:                     {MSElectronMultiplier, "MS:1000253", "electron multiplier", []CVID{MSDetectorType}},
	MSDataTransformation:                     {MSDataTransformation, "MS:1000452", "data transformation", nil},
	MSMassAnalyzerType:                       {MSMassAnalyzerType, "MS:1000443", "mass analyzer type", nil},
	MSScanPolarity:                           {MSScanPolarity, "MS:1000465", "scan polarity", nil},
	MSScanWindowUpperLimit:                   {MSScanWindowUpperLimit, "MS:1000500", "scan window upper limit", nil},
	MSScanWindowLowerLimit:                   {MSScanWindowLowerLimit, "MS:1000501", "scan window lower limit", nil},
	MSBaseMZ:                                 {MSBaseMZ, "MS:1000504", "base peak m/z", nil},
	MSBasePeakIntensity:                      {MSBasePeakIntensity, "MS:1000505", "base peak intensity", nil},
	MSMSLevel:                                {MSMSLevel, "MS:1000511", "ms level", nil},
	MSFilterString:                           {MSFilterString, "MS:1000512", "filter string", nil},
	MSBinaryDataArray:                        {MSBinaryDataArray, "MS:1000513", "binary data array", nil},
	MSMZArray:                                {MSMZArray, "MS:1000514", "m/z array", []CVID{MSBinaryDataArray}},
	MSIntensityArray:                         {MSIntensityArray, "MS:1000515", "intensity array", []CVID{MSBinaryDataArray}},
	MSBinaryDataType:                         {MSBinaryDataType, "MS:1000518", "binary data type", nil},
	MS32BitFloat:                             {MS32BitFloat, "MS:1000521", "32-bit float", []CVID{MSBinaryDataType}},
	MS64BitFloat:                             {MS64BitFloat, "MS:1000523", "64-bit float", []CVID{MSBinaryDataType}},
	MSSpectrumRepresentation:                 {MSSpectrumRepresentation, "MS:1000525", "spectrum representation", nil},
	MSHighestObservedMZ:                      {MSHighestObservedMZ, "MS:1000527", "highest observed m/z", nil},
	MSLowestObservedMZ:                       {MSLowestObservedMZ, "MS:1000528", "lowest observed m/z", nil},
	MSInstrumentSerialNumber:                 {MSInstrumentSerialNumber, "MS:1000529", "instrument serial number", nil},
	MSFileFormatConversion:                   {MSFileFormatConversion, "MS:1000530", "file format conversion", []CVID{MSDataTransformation}},
	MSSoftware:                               {MSSoftware, "MS:1000531", "software", nil},
	MSXcalibur:                               {MSXcalibur, "MS:1000532", "Xcalibur", []CVID{MSSoftware}},
	MSConversionToMzML:                       {MSConversionToMzML, "MS:1000544", "Conversion to mzML", []CVID{MSFileFormatConversion}},
	MSSpectrumType:                           {MSSpectrumType, "MS:1000559", "spectrum type", nil},
	MSMassSpectrometerFileFormat:             {MSMassSpectrometerFileFormat, "MS:1000560", "mass spectrometer file format", nil},
	MSDataFileChecksumType:                   {MSDataFileChecksumType, "MS:1000561", "data file checksum type", nil},
	MSThermoRAWFormat:                        {MSThermoRAWFormat, "MS:1000563", "Thermo RAW format", []CVID{MSMassSpectrometerFileFormat}},
	MSSHA1:                                   {MSSHA1, "MS:1000569", "SHA-1", []CVID{MSDataFileChecksumType}},
	MSBinaryDataCompressionType:              {MSBinaryDataCompressionType, "MS:1000572", "binary data compression type", nil},
	MSZlibCompression:                        {MSZlibCompression, "MS:1000574", "zlib compression", []CVID{MSBinaryDataCompressionType}},
	MSNoCompression:                          {MSNoCompression, "MS:1000576", "no compression", []CVID{MSBinaryDataCompressionType}},
	MSMS1Spectrum:                            {MSMS1Spectrum, "MS:1000579", "MS1 spectrum", []CVID{MSSpectrumType}},
	MSMSnSpectrum:                            {MSMSnSpectrum, "MS:1000580", "MSn spectrum", []CVID{MSSpectrumType}},
	MSMzMLFormat:                             {MSMzMLFormat, "MS:1000584", "mzML format", []CVID{MSMassSpectrometerFileFormat}},
	MSContactName:                            {MSContactName, "MS:1000586", "contact name", nil},
	MSContactEmail:                           {MSContactEmail, "MS:1000589", "contact email", nil},
	MSContactAffiliation:                     {MSContactAffiliation, "MS:1000590", "contact affiliation", nil},
	MSLowIntensityDataPointRemoval:           {MSLowIntensityDataPointRemoval, "MS:1000594", "low intensity data point removal", []CVID{MSDataTransformation}},
	MSTimeArray:                              {MSTimeArray, "MS:1000595", "time array", []CVID{MSBinaryDataArray}},
	MSProteoWizardSoftware:                   {MSProteoWizardSoftware, "MS:1000615", "ProteoWizard software", []CVID{MSSoftware}},
	MSPresetScanConfiguration:                {MSPresetScanConfiguration, "MS:1000616", "preset scan configuration", nil},
	MSInductiveDetector:                      {MSInductiveDetector, "MS:1000624", "inductive detector", []CVID{MSDetectorType}},
	MSChromatogramType:                       {MSChromatogramType, "MS:1000626", "chromatogram type", nil},
	MSSelectedIonCurrentChromatogram:         {MSSelectedIonCurrentChromatogram, "MS:1000627", "selected ion current chromatogram", []CVID{MSChromatogramType}},
	MSSelectedIonMZ:                          {MSSelectedIonMZ, "MS:1000744", "selected ion m/z", nil},
	MSNativeSpectrumIdentifierFormat:         {MSNativeSpectrumIdentifierFormat, "MS:1000767", "native spectrum identifier format", nil},
	MSThermoNativeIDFormat:                   {MSThermoNativeIDFormat, "MS:1000768", "Thermo nativeID format", []CVID{MSNativeSpectrumIdentifierFormat}},
	MSOrbitrap:                               {MSOrbitrap, "MS:1000484", "orbitrap", []CVID{MSMassAnalyzerType}},
	MSIsolationWindowTargetMZ:                {MSIsolationWindowTargetMZ, "MS:1000827", "isolation window target m/z", nil},
	MSIsolationWindowLowerOffset:             {MSIsolationWindowLowerOffset, "MS:1000828", "isolation window lower offset", nil},
	MSIsolationWindowUpperOffset:             {MSIsolationWindowUpperOffset, "MS:1000829", "isolation window upper offset", nil},
	MSSelectedReactionMonitoringChromatogram: {MSSelectedReactionMonitoringChromatogram, "MS:1001473", "selected reaction monitoring chromatogram", []CVID{MSChromatogramType}},
	MSPeakPicking:                            {MSPeakPicking, "MS:1000035", "peak picking", []CVID{MSDataTransformation}},
	MSDataFiltering:                          {MSDataFiltering, "MS:1001486", "data filtering", []CVID{MSDataTransformation}},
	UOTimeUnit:                               {UOTimeUnit, "UO:0000003", "time unit", nil},
	UOSecond:                                 {UOSecond, "UO:0000010", "second", []CVID{UOTimeUnit}},
	UOMinute:                                 {UOMinute, "UO:0000031", "minute", []CVID{UOTimeUnit}},
	UOElectronvolt:                           {UOElectronvolt, "UO:0000266", "electronvolt", nil},
	UONumberOfCounts:                         {UONumberOfCounts, "UO:0000189", "count unit", nil},
}

var byAccession = func() map[string]CVID {
	m := make(map[string]CVID, len(terms))
	for id, t := range terms {
		m[t.Accession] = id
	}
	return m
}()

// Info returns the term metadata for id. Unregistered ids map to the Unknown term.
func Info(id CVID) Term {
	if t, ok := terms[id]; ok {
		return t
	}
	return terms[Unknown]
}

// Parse resolves an accession such as "MS:1000515" to its term id.
func Parse(accession string) (CVID, error) {
	if id, ok := byAccession[strings.TrimSpace(accession)]; ok {
		return id, nil
	}
	return Unknown, fmt.Errorf("cv: unknown accession %q", accession)
}

// IsA reports whether child equals parent or has parent among its is-a ancestors.
func IsA(child, parent CVID) bool {
	if child == parent {
		return true
	}
	for _, p := range Info(child).Parents {
		if IsA(p, parent) {
			return true
		}
	}
	return false
}

// String returns the term name.
func (id CVID) String() string {
	return Info(id).Name
}

// MarshalText encodes the term as its accession.
func (id CVID) MarshalText() ([]byte, error) {
	return []byte(Info(id).Accession), nil
}

// UnmarshalText decodes an accession produced by MarshalText.
func (id *CVID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = Unknown
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Vocabulary describes a controlled vocabulary referenced by a document.
type Vocabulary struct {
	// ID is the short label used as accession prefix (MS, UO).
	ID string `json:"id"`
	// URI locates the vocabulary definition.
	URI string `json:"uri"`
	// FullName is the descriptive vocabulary name.
	FullName string `json:"full_name"`
	// Version is the vocabulary release.
	Version string `json:"version"`
}

// Empty reports whether every field is unset.
func (v Vocabulary) Empty() bool {
	return v.ID == "" && v.URI == "" && v.FullName == "" && v.Version == ""
}

// DefaultVocabularies returns the MS and UO vocabularies the term table is drawn from.
func DefaultVocabularies() []Vocabulary {
	return []Vocabulary{
		{
			ID:       "MS",
			URI:      "https://raw.githubusercontent.com/HUPO-PSI/psi-ms-CV/master/psi-ms.obo",
			FullName: "Proteomics Standards Initiative Mass Spectrometry Ontology",
			Version:  "4.1.30",
		},
		{
			ID:       "UO",
			URI:      "https://raw.githubusercontent.com/bio-ontology-research-group/unit-ontology/master/unit.obo",
			FullName: "Unit Ontology",
			Version:  "09:04:2014",
		},
	}
}
