package schemes

// Official is a sorted list of some well-known URI schemes registered
// with IANA that take an authority component (i.e. are followed by
// "://" rather than ":"). Five of the six schemes in Special are in
// this list ("file" is listed in NoAuthority instead); Official
// additionally covers schemes the state machine
// has no special handling for but the extractor should still
// recognize.
//
// This list primarily gathers schemes from:
//   - https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
var Official = []string{
	`coap`,
	`coaps`,
	`ftp`,
	`git`,
	`http`,
	`https`,
	`imap`,
	`irc`,
	`ircs`,
	`ldap`,
	`ldaps`,
	`nfs`,
	`nntp`,
	`pop`,
	`redis`,
	`rsync`,
	`rtmp`,
	`rtsp`,
	`sftp`,
	`smb`,
	`snmp`,
	`ssh`,
	`svn`,
	`telnet`,
	`ws`,
	`wss`,
}
