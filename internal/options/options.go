// Package options defines the configuration options clusterctl knows about
// and their defaults.
package options

// Option describes one configuration option.
type Option struct {
	// Name is the option key. Lookups are case-insensitive.
	Name string
	// Default is applied during bootstrap unless the option is already set.
	// It may reference other options with ${name}.
	Default string
	// DontInit marks options that are derived at runtime instead of
	// seeded from Default.
	DontInit bool
	// Description is a one-line help text.
	Description string
}

// Defaults returns the built-in option table. Order matters: defaults may
// only reference options that appear earlier or are set by the bootstrap.
func Defaults() []Option {
	return []Option{
		{Name: "Debug", Default: "0", Description: "Enable extensive debugging output in spool/debug.log."},
		{Name: "SpoolDir", Default: "${basedir}/spool", Description: "Location of the spool directory."},
		{Name: "CfgDir", Default: "${basedir}/etc", Description: "Directory for configuration files."},
		{Name: "BinDir", Default: "${basedir}/bin", Description: "Directory for executable files."},
		{Name: "LogDir", Default: "${basedir}/logs", Description: "Directory for archived log files."},
		{Name: "TmpDir", Default: "${spooldir}/tmp", Description: "Location of the temporary directory."},
		{Name: "NodeCfg", Default: "${cfgdir}/node.cfg", Description: "Node configuration file."},
		{Name: "StateFile", Default: "${spooldir}/state.dat", Description: "File storing the persistent controller state."},
		{Name: "AnalysisCfg", Default: "${cfgdir}/analysis.dat", Description: "Configuration file defining types of analysis which can be toggled on/off."},
		{Name: "SensorBinary", Default: "${bindir}/sensor", Description: "Location of the monitoring sensor binary."},
		{Name: "SitePolicy", Default: "local.policy", Description: "Site policy loaded on every node."},
		{Name: "SitePolicyManager", Default: "local-manager.policy", Description: "Site policy loaded on the manager only."},
		{Name: "SitePolicyWorker", Default: "local-worker.policy", Description: "Site policy loaded on workers only."},
		{Name: "MailSubjectPrefix", Default: "[Monitor]", Description: "General prefix for the subject of mails."},
		{Name: "SendMail", Default: "/usr/sbin/sendmail", Description: "Location of the sendmail binary."},
		{Name: "LogRotationInterval", Default: "3600", Description: "Log rotation interval in seconds."},
		{Name: "LogExpireInterval", Default: "30", Description: "Days after which archived logs are deleted; 0 keeps them forever."},
		{Name: "MinDiskSpace", Default: "5", Description: "Percentage of minimum disk space before warning is mailed."},
		{Name: "Standalone", DontInit: true, Description: "1 if the node file declares a standalone setup, set after the nodes are read."},
		{Name: "Cron", DontInit: true, Description: "1 while running from cron, cleared on every start."},
		{Name: "OS", DontInit: true, Description: "Name of the operating system as reported by uname."},
		{Name: "Time", DontInit: true, Description: "Path to the time binary."},
	}
}
