package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownTCPPorts = map[int]string{
	7: "echo",
	9: "discard",
	13: "daytime",
	19: "chargen",
	20: "ftp-data",
	21: "ftp",
	22: "ssh",
	23: "telnet",
	25: "smtp",
	37: "time",
	43: "nicname",
	49: "tacacs",
	53: "domain",
	67: "bootps",
	70: "gopher",
	79: "finger",
	80: "http",
	88: "kerberos",
	102: "iso-tsap",
	110: "pop3",
	111: "sunrpc",
	113: "auth",
	119: "nntp",
	123: "ntp",
	135: "epmap",
	137: "netbios-ns",
	139: "netbios-ssn",
	143: "imap",
	161: "snmp",
	179: "bgp",
	389: "ldap",
	443: "https",
	445: "microsoft-ds",
	465: "submissions",
	514: "shell",
	515: "printer",
	543: "klogin",
	544: "kshell",
	548: "afpovertcp",
	554: "rtsp",
	587: "submission",
	631: "ipp",
	636: "ldaps",
	873: "rsync",
	989: "ftps-data",
	990: "ftps",
	993: "imaps",
	995: "pop3s",
	1080: "socks",
	1433: "ms-sql-s",
	1521: "ncube-lm",
	1723: "pptp",
	1883: "mqtt",
	2049: "nfs",
	2181: "eforward",
	2375: "docker",
	2376: "docker-s",
	3306: "mysql",
	3389: "ms-wbt-server",
	5060: "sip",
	5432: "postgresql",
	5672: "amqp",
	5900: "rfb",
	6379: "redis",
	6443: "sun-sr-https",
	8080: "http-alt",
	8443: "pcsync-https",
	9092: "XmlIpcRegSvc",
	9200: "wap-wsp",
	11211: "memcache",
	27017: "mongodb",
}

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
var knownUDPPorts = map[int]string{
	7: "echo",
	9: "discard",
	13: "daytime",
	19: "chargen",
	37: "time",
	49: "tacacs",
	53: "domain",
	67: "bootps",
	68: "bootpc",
	69: "tftp",
	88: "kerberos",
	111: "sunrpc",
	123: "ntp",
	137: "netbios-ns",
	138: "netbios-dgm",
	161: "snmp",
	162: "snmptrap",
	389: "ldap",
	443: "https",
	500: "isakmp",
	514: "syslog",
	520: "router",
	623: "asf-rmcp",
	1194: "openvpn",
	1434: "ms-sql-m",
	1645: "sightline",
	1701: "l2f",
	1812: "radius",
	1813: "radius-acct",
	1900: "ssdp",
	2049: "nfs",
	3478: "stun",
	4500: "ipsec-nat-t",
	5060: "sip",
	5353: "mdns",
	5355: "llmnr",
	11211: "memcache",
}
