/*
Package toolchain locates working compiler toolchains for a build
configuration process. It defines the data model shared by all
toolchain families - candidate executables, probe flags, version
records, probe policies and the diagnostic log - together with a
registry of per-family locators. Family implementations, such as
package rust, register themselves on import and carry out the actual
probing.
*/
package toolchain
