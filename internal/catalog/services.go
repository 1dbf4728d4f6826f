package catalog

// defaultServices is the compiled-in service list. The set is fixed and
// small; it mirrors the entitlements the contract backend can grant.
var defaultServices = []Service{
	{
		Name:  "cc-eal",
		Title: "CC EAL2 Provisioning Packages",
		Help: "Common Criteria is an Information Technology Security Evaluation standard\n" +
			"(ISO/IEC IS 15408) for computer security certification. Ubuntu 16.04 has been\n" +
			"evaluated to assurance level EAL2 through CSEC. The evaluation was performed\n" +
			"on Intel x86_64, IBM Power8 and IBM Z hardware platforms.",
		Availability: map[string]bool{"xenial": true, "bionic": true},
	},
	{
		Name:    "cis",
		Aliases: []string{"usg"},
		Title:   "CIS Audit",
		Help: "Ubuntu Security Guide is a tool for hardening and auditing, allowing for\n" +
			"environment-specific customizations. It enables compliance with profiles such\n" +
			"as DISA-STIG and the CIS benchmarks.",
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true},
	},
	{
		Name:  "esm-apps",
		Title: "UA Apps: Extended Security Maintenance (ESM)",
		Help: "esm-apps provides access to a private PPA which includes available high and\n" +
			"critical CVE fixes for Ubuntu LTS packages in the Ubuntu Main and Ubuntu\n" +
			"Universe repositories from the Ubuntu LTS release date until its end of life.",
		Beta:         true,
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true, "jammy": true},
	},
	{
		Name:  "esm-infra",
		Title: "UA Infra: Extended Security Maintenance (ESM)",
		Help: "esm-infra provides access to a private PPA which includes available high and\n" +
			"critical CVE fixes for Ubuntu LTS packages in the Ubuntu Main repository\n" +
			"between the end of the standard Ubuntu LTS security maintenance and its end\n" +
			"of life.",
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true, "jammy": true},
	},
	{
		Name:  "fips",
		Title: "NIST-certified core packages",
		Help: "FIPS 140-2 certified kernel and crypto packages with FedRAMP, FISMA and\n" +
			"compliance support. Enabling FIPS installs a certified kernel; a reboot is\n" +
			"required to boot into it.",
		Availability:  map[string]bool{"xenial": true, "bionic": true, "focal": true},
		Incompatible:  []string{"livepatch", "fips-updates", "realtime-kernel"},
		AffectsKernel: true,
	},
	{
		Name:  "fips-updates",
		Title: "NIST-certified core packages with priority security updates",
		Help: "fips-updates installs FIPS-certified packages including all security fixes\n" +
			"released since certification, trading strict certification for currency of\n" +
			"security coverage.",
		Availability:  map[string]bool{"xenial": true, "bionic": true, "focal": true},
		Incompatible:  []string{"fips", "realtime-kernel"},
		AffectsKernel: true,
	},
	{
		Name:  "livepatch",
		Title: "Canonical Livepatch service",
		Help: "Livepatch provides selected high and critical kernel CVE fixes and other\n" +
			"critical kernel concerns as live patches, reducing the need for unplanned\n" +
			"reboots between maintenance windows.",
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true, "jammy": true},
		Incompatible: []string{"fips", "realtime-kernel"},
	},
	{
		Name:  "realtime-kernel",
		Title: "Ubuntu kernel with PREEMPT_RT patches integrated",
		Help: "The Real-time kernel provides deterministic response times for latency\n" +
			"sensitive workloads. Enabling it replaces the running kernel; a reboot is\n" +
			"required.",
		Beta:          true,
		Availability:  map[string]bool{"jammy": true},
		Incompatible:  []string{"fips", "fips-updates", "livepatch"},
		AffectsKernel: true,
	},
	{
		Name:  "ros",
		Title: "Security Updates for the Robot Operating System",
		Help: "ros provides security updates for the Robot Operating System (ROS) Kinetic\n" +
			"and Melodic distributions on top of the esm-infra and esm-apps package\n" +
			"streams.",
		Beta:         true,
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true},
		Requires:     []string{"esm-infra", "esm-apps"},
	},
	{
		Name:  "ros-updates",
		Title: "All Updates for the Robot Operating System",
		Help: "ros-updates provides all non-security updates for the Robot Operating System\n" +
			"(ROS) Kinetic and Melodic distributions in addition to the security coverage\n" +
			"of the ros service.",
		Beta:         true,
		Availability: map[string]bool{"xenial": true, "bionic": true, "focal": true},
		Requires:     []string{"ros"},
	},
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return New(defaultServices)
}
