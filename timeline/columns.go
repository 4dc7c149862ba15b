package timeline

// Field addresses one of the fixed timeline columns, in header order.
type Field int

const (
	FieldEventTime Field = iota
	FieldMachineID
	FieldComputerName
	FieldActionType
	FieldFileName
	FieldFolderPath
	FieldSHA1
	FieldSHA256
	FieldMD5
	FieldProcessCommandLine
	FieldAccountDomain
	FieldAccountName
	FieldAccountSID
	FieldLogonID
	FieldProcessID
	FieldProcessCreationTime
	FieldProcessTokenElevation
	FieldRegistryKey
	FieldRegistryValueName
	FieldRegistryValueData
	FieldRemoteURL
	FieldRemoteComputerName
	FieldRemoteIP
	FieldRemotePort
	FieldLocalIP
	FieldLocalPort
	FieldFileOriginURL
	FieldFileOriginIP
	FieldInitiatingProcessSHA1
	FieldInitiatingProcessSHA256
	FieldInitiatingProcessFileName
	FieldInitiatingProcessFolderPath
	FieldInitiatingProcessID
	FieldInitiatingProcessCommandLine
	FieldInitiatingProcessCreationTime
	FieldInitiatingProcessIntegrityLevel
	FieldInitiatingProcessTokenElevation
	FieldInitiatingProcessParentID
	FieldInitiatingProcessParentFileName
	FieldInitiatingProcessParentCreationTime
	FieldInitiatingProcessMD5
	FieldInitiatingProcessAccountDomain
	FieldInitiatingProcessAccountName
	FieldInitiatingProcessAccountSID
	FieldInitiatingProcessLogonID
	FieldReportID
	FieldAdditionalFields
	FieldTypedDetails
	FieldAppGuardContainerID
	FieldProtocol
	FieldLogonType
	FieldProcessIntegrityLevel
	FieldRegistryValueType
	FieldPreviousRegistryValueName
	FieldPreviousRegistryValueData
	FieldPreviousRegistryKey
	FieldFileOriginReferrerURL
	FieldSensitivityLabel
	FieldSensitivitySubLabel
	FieldIsEndpointDLPApplied
	FieldIsAzureInfoProtectionApplied
	FieldAlertIDs
	FieldCategories
	FieldSeverities
	FieldIsMarked
	FieldDataType

	// NumFields is the exact column count of a timeline export.
	NumFields
)

// Column describes one header position.
type Column struct {
	Name       string
	Searchable bool
}

// Columns lists the header in the order the export writes it.
var Columns = [NumFields]Column{
	FieldEventTime:                           {"Event Time", true},
	FieldMachineID:                           {"Machine Id", true},
	FieldComputerName:                        {"Computer Name", true},
	FieldActionType:                          {"Action Type", true},
	FieldFileName:                            {"File Name", true},
	FieldFolderPath:                          {"Folder Path", true},
	FieldSHA1:                                {"Sha1", true},
	FieldSHA256:                              {"Sha256", true},
	FieldMD5:                                 {"MD5", true},
	FieldProcessCommandLine:                  {"Process Command Line", true},
	FieldAccountDomain:                       {"Account Domain", true},
	FieldAccountName:                         {"Account Name", true},
	FieldAccountSID:                          {"Account Sid", true},
	FieldLogonID:                             {"Logon Id", false},
	FieldProcessID:                           {"Process Id", true},
	FieldProcessCreationTime:                 {"Process Creation Time", true},
	FieldProcessTokenElevation:               {"Process Token Elevation", false},
	FieldRegistryKey:                         {"Registry Key", true},
	FieldRegistryValueName:                   {"Registry Value Name", true},
	FieldRegistryValueData:                   {"Registry Value Data", true},
	FieldRemoteURL:                           {"Remote Url", true},
	FieldRemoteComputerName:                  {"Remote Computer Name", true},
	FieldRemoteIP:                            {"Remote IP", true},
	FieldRemotePort:                          {"Remote Port", true},
	FieldLocalIP:                             {"Local IP", true},
	FieldLocalPort:                           {"Local Port", true},
	FieldFileOriginURL:                       {"File Origin Url", true},
	FieldFileOriginIP:                        {"File Origin IP", true},
	FieldInitiatingProcessSHA1:               {"Initiating Process SHA1", true},
	FieldInitiatingProcessSHA256:             {"Initiating Process SHA256", true},
	FieldInitiatingProcessFileName:           {"Initiating Process File Name", true},
	FieldInitiatingProcessFolderPath:         {"Initiating Process Folder Path", true},
	FieldInitiatingProcessID:                 {"Initiating Process Id", true},
	FieldInitiatingProcessCommandLine:        {"Initiating Process Command Line", true},
	FieldInitiatingProcessCreationTime:       {"Initiating Process Creation Time", true},
	FieldInitiatingProcessIntegrityLevel:     {"Initiating Process Integrity Level", false},
	FieldInitiatingProcessTokenElevation:     {"Initiating Process Token Elevation", false},
	FieldInitiatingProcessParentID:           {"Initiating Process Parent Id", false},
	FieldInitiatingProcessParentFileName:     {"Initiating Process Parent File Name", true},
	FieldInitiatingProcessParentCreationTime: {"Initiating Process Parent Creation Time", false},
	FieldInitiatingProcessMD5:                {"Initiating Process MD5", false},
	FieldInitiatingProcessAccountDomain:      {"Initiating Process Account Domain", true},
	FieldInitiatingProcessAccountName:        {"Initiating Process Account Name", true},
	FieldInitiatingProcessAccountSID:         {"Initiating Process Account Sid", false},
	FieldInitiatingProcessLogonID:            {"Initiating Process Logon Id", false},
	FieldReportID:                            {"Report Id", true},
	FieldAdditionalFields:                    {"Additional Fields", true},
	FieldTypedDetails:                        {"Typed Details", true},
	FieldAppGuardContainerID:                 {"App Guard Container Id", false},
	FieldProtocol:                            {"Protocol", true},
	FieldLogonType:                           {"Logon Type", false},
	FieldProcessIntegrityLevel:               {"Process Integrity Level", false},
	FieldRegistryValueType:                   {"Registry Value Type", false},
	FieldPreviousRegistryValueName:           {"Previous Registry Value Name", false},
	FieldPreviousRegistryValueData:           {"Previous Registry Value Data", false},
	FieldPreviousRegistryKey:                 {"Previous Registry Key", false},
	FieldFileOriginReferrerURL:               {"File Origin Referrer Url", false},
	FieldSensitivityLabel:                    {"Sensitivity Label", false},
	FieldSensitivitySubLabel:                 {"Sensitivity Sub Label", false},
	FieldIsEndpointDLPApplied:                {"Is Endpoint Dlp Applied", false},
	FieldIsAzureInfoProtectionApplied:        {"Is Azure Info Protection Applied", false},
	FieldAlertIDs:                            {"Alert Ids", true},
	FieldCategories:                          {"Categories", true},
	FieldSeverities:                          {"Severities", true},
	FieldIsMarked:                            {"Is Marked", false},
	FieldDataType:                            {"Data Type", true},
}

func (f Field) String() string {
	if f < 0 || f >= NumFields {
		return "Unknown"
	}
	return Columns[f].Name
}

// HeaderNames returns the expected header row.
func HeaderNames() []string {
	out := make([]string, NumFields)
	for i, c := range Columns {
		out[i] = c.Name
	}
	return out
}
